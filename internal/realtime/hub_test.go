package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case evt := <-sub.Events():
		return evt
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
		return Event{}
	}
}

func assertEmpty(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case evt := <-sub.Events():
		t.Fatalf("unexpected event %s", evt.Name)
	default:
	}
}

func TestHub_PublishRespectsFilters(t *testing.T) {
	hub := NewHub(4, testLogger(), nil)
	admin := hub.Subscribe(AllEvents)
	public := hub.Subscribe(PublicEvents)
	defer admin.Close()
	defer public.Close()

	hub.Publish(context.Background(), domain.EventNewOrder, map[string]string{"orderId": "ORD-1"})
	hub.Publish(context.Background(), domain.EventStockUpdated, map[string]int64{"stock": 3})

	evt := receive(t, admin)
	assert.Equal(t, domain.EventNewOrder, evt.Name)
	assert.JSONEq(t, `{"orderId":"ORD-1"}`, string(evt.Payload))
	assert.Equal(t, domain.EventStockUpdated, receive(t, admin).Name)

	assert.Equal(t, domain.EventStockUpdated, receive(t, public).Name)
	assertEmpty(t, public)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(1, testLogger(), nil)
	sub := hub.Subscribe(nil)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for range 10 {
			hub.Publish(context.Background(), domain.EventDealerUpdated, struct{}{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Equal(t, domain.EventDealerUpdated, receive(t, sub).Name)
	assertEmpty(t, sub)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(1, testLogger(), nil)
	sub := hub.Subscribe(nil)
	require.Equal(t, 1, hub.Subscribers())

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, hub.Subscribers())

	_, ok := <-sub.Events()
	assert.False(t, ok)

	hub.Publish(context.Background(), domain.EventNewOrder, nil)
}

type fakePublishClient struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublishClient) Publish(_ context.Context, channel string, message any) *redis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	return redis.NewIntResult(1, nil)
}

func TestRedisPublisher_RoundTripThroughRelay(t *testing.T) {
	hub := NewHub(4, testLogger(), nil)
	sub := hub.Subscribe(nil)
	defer sub.Close()

	client := new(fakePublishClient)
	publisher := &RedisPublisher{client: client, channel: DefaultChannel, fallback: hub, l: testLogger()}
	publisher.Publish(context.Background(), domain.EventOrderStatusUpdated, map[string]string{"status": "Dispatched"})

	assert.Equal(t, DefaultChannel, client.channel)
	require.NotEmpty(t, client.message)
	// сам publisher локально не рассылает, это делает relay.
	assertEmpty(t, sub)

	relay := &RedisRelay{hub: hub, l: testLogger()}
	relay.handle(string(client.message))

	evt := receive(t, sub)
	assert.Equal(t, domain.EventOrderStatusUpdated, evt.Name)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))
	assert.Equal(t, "Dispatched", payload["status"])

	relay.handle("{broken")
	assertEmpty(t, sub)
}

func TestRedisPublisher_FallsBackToLocalHub(t *testing.T) {
	hub := NewHub(4, testLogger(), nil)
	sub := hub.Subscribe(nil)
	defer sub.Close()

	client := &fakePublishClient{err: errors.New("connection refused")}
	publisher := &RedisPublisher{client: client, channel: DefaultChannel, fallback: hub, l: testLogger()}
	publisher.Publish(context.Background(), domain.EventNewApplication, map[string]string{"name": "Ravi"})

	assert.Equal(t, domain.EventNewApplication, receive(t, sub).Name)
}
