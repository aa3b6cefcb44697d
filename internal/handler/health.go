package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that external systems can
// use to verify the service is alive.
//
// This API has no database or cache, so there are no dependency
// sub-checks: a process that can answer is a healthy process.
type HealthHandler struct {
	Handler
	startedAt time.Time
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		startedAt: time.Now(),
	}
}

// CheckHealth returns the system health status.
//
// Response includes the overall status, timestamp (UTC), configured
// environment, and process uptime.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	}

	logger.Info().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
