package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "pharmacy-inventory-console/internal/auth/delivery/http"
	authUC "pharmacy-inventory-console/internal/auth/usecase"
	dashboardHTTP "pharmacy-inventory-console/internal/dashboard/delivery/http"
	dashboardRepo "pharmacy-inventory-console/internal/dashboard/repository/pharmd"
	dashboardUC "pharmacy-inventory-console/internal/dashboard/usecase"
	inventoryHTTP "pharmacy-inventory-console/internal/inventory/delivery/http"
	inventoryRepo "pharmacy-inventory-console/internal/inventory/repository/pharmd"
	inventoryUC "pharmacy-inventory-console/internal/inventory/usecase"
	"pharmacy-inventory-console/internal/middleware"
)

func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup) {
	uc := authUC.New(srv.l, srv.backend, srv.session)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv *HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := inventoryRepo.New(srv.backend, srv.l)
	uc := inventoryUC.New(srv.l, repo, srv.pageSize, srv.notificationTTL)
	h := inventoryHTTP.New(srv.l, uc)
	inventoryHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Inventory domain registered")
}

func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := dashboardRepo.New(srv.backend, srv.l)
	uc := dashboardUC.New(srv.l, repo, repo, repo)
	h := dashboardHTTP.New(srv.l, uc)
	dashboardHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
}
