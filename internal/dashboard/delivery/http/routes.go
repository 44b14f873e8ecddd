package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The whole
// dashboard sits behind the session gate.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dash := rg.Group("/dashboard", mw.Auth())
	{
		dash.GET("/overview", h.Overview)
		dash.POST("/refresh", h.Refresh)
		dash.POST("/alerts/generate", h.GenerateAlerts)
		dash.DELETE("/alerts/:id", h.DeleteAlert)
		dash.POST("/sales/upload", h.UploadSales)
	}
}
