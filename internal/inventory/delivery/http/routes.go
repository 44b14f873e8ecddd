package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Everything
// here is behind the session gate: the console is useless without a
// backend token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	inv := rg.Group("/inventory", mw.Auth())
	{
		inv.GET("/view", h.View)
		inv.POST("/refresh", h.Refresh)
		inv.PUT("/query", h.SetQuery)
		inv.PUT("/page", h.SetPage)
		inv.PUT("/sort", h.SetSort)
		inv.GET("/notifications", h.Notifications)

		medicines := inv.Group("/medicines")
		{
			medicines.POST("", h.Create)
			medicines.PUT("/:id", h.Update)
			medicines.DELETE("/:id", h.Delete)
			medicines.POST("/:id/adjust", h.AdjustStock)
		}
	}
}
