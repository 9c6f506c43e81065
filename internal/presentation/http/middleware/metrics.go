package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luzbrill/pos-terminal/internal/infrastructure/metrics"
)

// MetricsMiddleware counts handled requests by method, route template and
// status code.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
