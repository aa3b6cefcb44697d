package router

import (
	"net/http"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerPersonRoutes maps the API surface onto the handlers.
//
// The success status of each route is fixed here, next to the route
// itself, so the whole contract is visible in one place.
func registerPersonRoutes(e *echo.Echo, h *handler.Handlers, mws *middleware.Middlewares) {
	e.GET("/", h.Home.Home)

	e.POST("/person/new", handler.Handle(h.Person.Handler, h.Person.CreatePerson, http.StatusCreated))
	e.GET("/person/detail", handler.Handle(h.Person.Handler, h.Person.ShowPerson, http.StatusOK))
	e.GET("/person/detail/:person_id", handler.Handle(h.Person.Handler, h.Person.PersonDetail, http.StatusAccepted))
	e.PUT("/person/:person_id", handler.Handle(h.Person.Handler, h.Person.UpdatePerson, http.StatusCreated))

	// The form endpoints take the brunt of bot traffic; cap them.
	e.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK), mws.RateLimit.Limiter())
	e.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.Contact, http.StatusOK), mws.RateLimit.Limiter())

	e.POST("/post-image", handler.Handle(h.Upload.Handler, h.Upload.UploadImage, http.StatusOK))
}
