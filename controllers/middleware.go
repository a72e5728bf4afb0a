package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a unique id, kept in the context and
// echoed in the response so log lines can be correlated with responses.
func RequestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set("requestID", id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}
