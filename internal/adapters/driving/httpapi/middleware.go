package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	keyRequestID    = "requestID"
)

// requestID propagates the caller's request ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(keyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// accessLog writes one debug line per request.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("[%s] %s %s %d %s", c.GetString(keyRequestID),
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
