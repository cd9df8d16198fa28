package ui

import (
	"time"

	"github.com/gin-gonic/gin"

	"govalue/internal"
)

// requestLogger logs method, path, status and latency for each request
func requestLogger(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Debug("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(started))
	}
}
