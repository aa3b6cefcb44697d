package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/server"
)

// RateLimitMiddleware caps request rates on the form endpoints (login,
// contact) and records each rejected request as telemetry.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs the rate limit middleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limiter returns an Echo rate limiter keyed by client IP, backed by
// an in-memory token bucket store. The limit comes from config, with a
// built-in default when unset.
func (r *RateLimitMiddleware) Limiter() echo.MiddlewareFunc {
	limit := r.server.Config.Server.RateLimitPerSecond
	if limit <= 0 {
		limit = config.DefaultRateLimitPerSecond
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit),
			Burst:     int(limit) * 2,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			return echo.ErrTooManyRequests
		},
	})
}

// RecordRateLimitHit records a rejected request as a New Relic custom
// event, when the agent is configured.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
