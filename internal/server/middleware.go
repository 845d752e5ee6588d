package server

import (
	"strconv"
	"time"

	"barbershop/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route template.
// Requests that match no route are skipped to keep label cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			return
		}

		metrics.RecordHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
