package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pharmacy-inventory-console/internal/middleware"
	"pharmacy-inventory-console/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() middleware.Middleware {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Rate limit: %d req/min per IP", srv.rateLimitPerMin)
	} else {
		srv.l.Infof(ctx, "Environment: %s, rate limit: %d req/min per IP", srv.environment, srv.rateLimitPerMin)
	}

	mw := middleware.New(srv.l, srv.session, srv.rateLimitPerMin)
	srv.gin.Use(mw.RateLimit())
	return mw
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	srv.setupAuthDomain(ctx, api)
	srv.setupInventoryDomain(ctx, api, mw)
	srv.setupDashboardDomain(ctx, api, mw)

	return nil
}
