package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"concierge-router/pkg/log"
)

// HeaderRequestID is read from and echoed on every request.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLength bounds caller-supplied ids.
const maxRequestIDLength = 128

// RequestID propagates the caller's request id, or a new uuid, into the
// request context so every log line and outbound call carries it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
