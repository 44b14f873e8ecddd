package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/internal/inventory"
	"pharmacy-inventory-console/pkg/log"
)

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	View(c *gin.Context)
	Refresh(c *gin.Context)
	SetQuery(c *gin.Context)
	SetPage(c *gin.Context)
	SetSort(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	AdjustStock(c *gin.Context)
	Notifications(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc inventory.UseCase
}

// New creates a new HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
