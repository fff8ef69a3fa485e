package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"central-gpt/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id that is echoed back and attached to log lines.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
