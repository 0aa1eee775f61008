// Package readonly turns the HTTP API into a report-only service.
package readonly

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is returned to blocked requests.
const Message = "The store is read-only"

// Middleware blocks write operations when read-only mode is on.
// GET, HEAD and OPTIONS always pass.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that rejects writes with 403.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     Message,
			"code":      "read_only",
			"read_only": true,
		})
	}
}
