package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags each request with an identifier, honoring one supplied by
// the caller.
func RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Writer.Header().Set("X-Request-ID", id)
	c.Set("request_id", id)
	c.Next()
}
