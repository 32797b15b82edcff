package api

import (
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/realtime"
	"github.com/gin-gonic/gin"
)

const DefaultHeartbeat = 25 * time.Second

// EventsHandler отдает события через Server-Sent Events. Клиент получает только события,
// опубликованные после подключения.
type EventsHandler struct {
	hub       *realtime.Hub
	heartbeat time.Duration
}

func NewEventsHandler(hub *realtime.Hub, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &EventsHandler{hub: hub, heartbeat: heartbeat}
}

// Public GET RouteGroup + EventsRoute. Только stock_updated.
func (h *EventsHandler) Public(c *gin.Context) {
	h.stream(c, realtime.PublicEvents)
}

// Admin GET RouteGroup + AdminEventsRoute. Все события.
func (h *EventsHandler) Admin(c *gin.Context) {
	h.stream(c, realtime.AllEvents)
}

func (h *EventsHandler) stream(c *gin.Context, filter realtime.Filter) {
	if h.hub == nil {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	sub := h.hub.Subscribe(filter)
	defer sub.Close()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case evt, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(string(evt.Name), evt.Payload)
			return true
		case <-ticker.C:
			// комментарий держит соединение через прокси.
			_, err := io.WriteString(w, ": ping\n\n")
			return err == nil
		}
	})
}
