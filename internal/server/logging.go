package server

import (
	"time"

	"barbershop/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLoggingMiddleware logs one structured line per request. Server
// errors are logged at error level so they stand out in aggregation.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if status >= 500 {
			logger.Error("HTTP request failed", fields...)
			return
		}
		logger.Info("HTTP request", fields...)
	}
}
