package realtime

import (
	"context"
	"sync"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/sirupsen/logrus"
)

const DefaultSubscriberBuffer = 32

// Hub рассылает события подписчикам внутри процесса.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscription]struct{}
	buffer      int
	l           *logrus.Entry
	metrics     *metrics.ShopMetrics
}

func NewHub(buffer int, l *logrus.Entry, m *metrics.ShopMetrics) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Hub{
		subscribers: make(map[*Subscription]struct{}),
		buffer:      buffer,
		l:           l.WithField("component", "realtime"),
		metrics:     m,
	}
}

type Subscription struct {
	hub    *Hub
	ch     chan Event
	filter Filter
	once   sync.Once
}

// Events канал закрывается после Close.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subscribers, s)
		close(s.ch)
		s.hub.mu.Unlock()
	})
}

func (h *Hub) Subscribe(filter Filter) *Subscription {
	if filter == nil {
		filter = AllEvents
	}
	sub := &Subscription{hub: h, ch: make(chan Event, h.buffer), filter: filter}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Broadcast не блокируется: если буфер подписчика полон, событие для него отбрасывается.
func (h *Hub) Broadcast(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		if !sub.filter(evt.Name) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			h.l.WithField("event", evt.Name).Debug("subscriber buffer is full, event dropped")
		}
	}
}

// Publish реализует публикацию для одного инстанса без redis.
func (h *Hub) Publish(_ context.Context, name domain.EventName, payload any) {
	evt, err := NewEvent(name, payload)
	if err != nil {
		h.l.WithError(err).Error("publishing event")
		return
	}
	h.metrics.IncEventPublished(string(name))
	h.Broadcast(evt)
}
