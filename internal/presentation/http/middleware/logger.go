package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware creates a structured logging middleware
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate request ID if not present
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		if raw != "" {
			path = path + "?" + raw
		}

		terminal := "-"
		if sess := SessionFromContext(c); sess != nil && sess.TerminalID != "" {
			terminal = sess.TerminalID
		}

		// Client-supplied request IDs can be arbitrarily short.
		shortID := requestID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		log.Printf("[%s] %s | %d | %v | %s | %s | %s",
			shortID,
			method,
			statusCode,
			latency,
			clientIP,
			terminal,
			path,
		)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				log.Printf("[%s] Error: %v", shortID, e.Err)
			}
		}
	}
}
