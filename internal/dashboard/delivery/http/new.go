package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/internal/dashboard"
	"pharmacy-inventory-console/pkg/log"
)

// Handler is the public interface for the dashboard HTTP delivery layer.
type Handler interface {
	Overview(c *gin.Context)
	Refresh(c *gin.Context)
	GenerateAlerts(c *gin.Context)
	DeleteAlert(c *gin.Context)
	UploadSales(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for the dashboard domain.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
