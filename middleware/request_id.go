package middleware

import (
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewRequestIDMiddleware returns a middleware that tags every request with
// a short random ID used to correlate log lines
func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := gonanoid.New(10)
		if err != nil {
			// Practically unreachable, the OS entropy pool is gone
			id = "unknown"
		}

		c.Set("requestID", id)
		c.Next()
	}
}
