package router

import (
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// API contract itself, kept in a dedicated file.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	e.GET("/status", h.Health.CheckHealth)
}
