package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	catalogKeyPrefix  = "jalsa:catalog:products:"
	catalogVersionKey = "jalsa:catalog:version"
	// unknownVersion версию прочитать не удалось, снимок не кешируется.
	unknownVersion int64 = -1
)

type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisCatalogCache хранит снимок каталога под ключом текущей версии. Invalidate увеличивает
// версию, старые снимки истекают по ttl.
type RedisCatalogCache struct {
	store cmdable
	ttl   time.Duration
	l     *logrus.Entry
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, l *logrus.Entry) *RedisCatalogCache {
	return &RedisCatalogCache{store: client, ttl: ttl, l: l.WithField("component", "cache")}
}

func catalogKey(version int64) string {
	return catalogKeyPrefix + strconv.FormatInt(version, 10)
}

func (c *RedisCatalogCache) version(ctx context.Context) (int64, error) {
	version, err := c.store.Get(ctx, catalogVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err //nolint:wrapcheck
}

func (c *RedisCatalogCache) Get(ctx context.Context) ([]domain.Product, int64, bool) {
	version, err := c.version(ctx)
	if err != nil {
		c.l.WithError(err).Warn("reading catalog cache version")
		return nil, unknownVersion, false
	}

	val, err := c.store.Get(ctx, catalogKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, false
	}
	if err != nil {
		c.l.WithError(err).Warn("reading catalog cache")
		return nil, version, false
	}

	var products []domain.Product
	if err = json.Unmarshal(val, &products); err != nil {
		c.l.WithError(err).Warn("decoding catalog cache")
		return nil, version, false
	}
	return products, version, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, version int64, products []domain.Product) {
	if version == unknownVersion {
		return
	}
	payload, err := json.Marshal(products)
	if err != nil {
		c.l.WithError(err).Warn("encoding catalog cache")
		return
	}
	if err = c.store.Set(ctx, catalogKey(version), payload, c.ttl).Err(); err != nil {
		c.l.WithError(err).Warn("writing catalog cache")
	}
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) {
	if err := c.store.Incr(ctx, catalogVersionKey).Err(); err != nil {
		c.l.WithError(err).Warn("invalidating catalog cache")
	}
}
