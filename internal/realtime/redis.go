package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const DefaultChannel = "jalsa:events"

type publishClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisPublisher отправляет события в канал redis, откуда их разбирают RedisRelay всех инстансов.
// Если redis недоступен, событие уходит только локальным подписчикам.
type RedisPublisher struct {
	client   publishClient
	channel  string
	fallback *Hub
	l        *logrus.Entry
	metrics  *metrics.ShopMetrics
}

func NewRedisPublisher(
	client *redis.Client,
	channel string,
	fallback *Hub,
	l *logrus.Entry,
	m *metrics.ShopMetrics,
) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{
		client:   client,
		channel:  channel,
		fallback: fallback,
		l:        l.WithField("component", "realtime"),
		metrics:  m,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, name domain.EventName, payload any) {
	evt, err := NewEvent(name, payload)
	if err != nil {
		p.l.WithError(err).Error("publishing event")
		return
	}
	p.metrics.IncEventPublished(string(name))

	data, err := json.Marshal(evt)
	if err != nil {
		p.l.WithError(err).Error("encoding event")
		return
	}
	if err = p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		p.l.WithError(err).WithField("event", name).Warn("redis publish failed, delivering locally")
		p.fallback.Broadcast(evt)
	}
}

// RedisRelay слушает канал redis и передает события в локальный Hub.
type RedisRelay struct {
	client  *redis.Client
	channel string
	hub     *Hub
	l       *logrus.Entry
}

func NewRedisRelay(client *redis.Client, channel string, hub *Hub, l *logrus.Entry) *RedisRelay {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisRelay{client: client, channel: channel, hub: hub, l: l.WithField("component", "realtime")}
}

// Run блокируется до отмены ctx.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", r.channel, err)
	}
	r.l.WithField("channel", r.channel).Info("realtime relay subscribed")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(msg.Payload)
		}
	}
}

func (r *RedisRelay) handle(payload string) {
	var evt Event
	if err := json.Unmarshal([]byte(payload), &evt); err != nil {
		r.l.WithError(err).Warn("dropping malformed event")
		return
	}
	r.hub.Broadcast(evt)
}
