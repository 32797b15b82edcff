package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCmdable struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *mockCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	if m.failGet {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	default:
		m.data[key] = fmt.Sprint(v)
	}
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Incr(_ context.Context, key string) *redis.IntCmd {
	var n int64
	if v, ok := m.data[key]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return redis.NewIntResult(0, err)
		}
		n = parsed
	}
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func newTestCache(store cmdable) *RedisCatalogCache {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &RedisCatalogCache{store: store, ttl: 30 * time.Second, l: logrus.NewEntry(l)}
}

func TestRedisCatalogCache_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMockCmdable()
	c := newTestCache(store)

	_, version, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(0), version)

	products := []domain.Product{
		{ID: 1, Size: "1 Litre", CrateSize: 12, PricePerCrate: decimal.NewFromInt(120), Stock: 40},
		{ID: 2, Size: "500 ml", CrateSize: 24, PricePerCrate: decimal.NewFromInt(150), Stock: 0},
	}
	c.Set(ctx, version, products)
	assert.Equal(t, 30*time.Second, store.ttls[catalogKey(0)])

	cached, _, ok := c.Get(ctx)
	require.True(t, ok)
	require.Len(t, cached, 2)
	assert.Equal(t, "1 Litre", cached[0].Size)
	assert.True(t, cached[1].PricePerCrate.Equal(decimal.NewFromInt(150)))

	c.Invalidate(ctx)
	_, version, ok = c.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(1), version)
}

// Снимок, прочитанный из базы до Invalidate, не должен стать видимым после него.
func TestRedisCatalogCache_SetAfterInvalidateIsIgnored(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(newMockCmdable())

	_, version, ok := c.Get(ctx)
	require.False(t, ok)

	stale := []domain.Product{{ID: 1, Size: "1 Litre", Stock: 40}}
	c.Invalidate(ctx)
	c.Set(ctx, version, stale)

	_, _, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestRedisCatalogCache_ErrorsAreMisses(t *testing.T) {
	ctx := context.Background()
	store := newMockCmdable()
	store.data[catalogKey(0)] = "{not json"
	c := newTestCache(store)

	_, _, ok := c.Get(ctx)
	assert.False(t, ok)

	store.failGet = true
	_, version, ok := c.Get(ctx)
	assert.False(t, ok)

	// без версии снимок не пишется.
	c.Set(ctx, version, []domain.Product{{ID: 1}})
	assert.Equal(t, "{not json", store.data[catalogKey(0)])
	assert.Len(t, store.data, 1)
}
