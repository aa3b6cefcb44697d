package handler

import (
	"net/http"

	"github.com/deppfellow/person-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HomeHandler serves the root greeting. It exists mostly so a person
// poking the API with curl gets an immediate sign of life.
type HomeHandler struct {
	Handler
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// Home returns the fixed greeting payload.
func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"Hello": "World"})
}
