package middleware

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/pkg/response"
)

// Auth gates a route on the console session holding a backend token.
// The session is consulted on every request so a logout takes effect
// immediately.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.session.IsAuthenticated() {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
