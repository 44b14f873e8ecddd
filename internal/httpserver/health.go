package httpserver

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Pharmacy Inventory Console"
	HealthVersion = "1.0.0"
	ServiceName   = "pharmacy-inventory-console"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the console is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Console is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — ready means a session exists, so
// gated routes will actually serve.
// @Summary Readiness Check
// @Description Check if the console is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Console is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":        "ready",
		"message":       HealthMessage,
		"version":       HealthVersion,
		"service":       ServiceName,
		"authenticated": srv.session.IsAuthenticated(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the console is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Console is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
