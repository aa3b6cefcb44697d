// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: error funnel first, then the
// middleware stack in dependency order, then the routes.
//
// Middleware order matters:
//  1. New Relic opens the transaction (so everyone downstream sees it)
//  2. RequestID assigns/propagates the correlation id
//  3. ContextEnhancer builds the request-scoped logger (wants both)
//  4. EnhanceTracing decorates the transaction (wants the request id)
//  5. the rest are order-insensitive
func New(mws *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	e.Use(mws.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Tracing.EnhanceTracing())
	e.Use(mws.Global.CORS())
	e.Use(mws.Global.RequestLogger())
	e.Use(mws.Global.Recover())
	e.Use(mws.Global.Secure())

	registerPersonRoutes(e, h, mws)
	registerSystemRoutes(e, h)

	return e
}
