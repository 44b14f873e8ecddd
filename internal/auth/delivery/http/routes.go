package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Auth
// routes are the only public ones: everything else needs a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/logout", h.Logout)
	}
}
