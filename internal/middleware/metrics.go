package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/metrics"
)

// Metrics records request latency per route. FullPath keeps the
// cardinality bounded: "/api/v1/hotels/:slug", not one series per slug.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
