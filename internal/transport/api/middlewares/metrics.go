package middlewares

import (
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics пишет длительность запроса по шаблону маршрута, чтобы id в пути не плодили серии.
func Metrics(m *metrics.ShopMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
