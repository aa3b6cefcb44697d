package handler

import (
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// AuthHandler serves POST /login. There is no credential check behind
// it: the endpoint demonstrates form binding, nothing more.
type AuthHandler struct {
	Handler
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
	}
}

// LoginRequest carries the login form fields. Both are required; the
// password is accepted as-is and discarded.
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// Login echoes the username back with the fixed success message.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (model.LoginOut, error) {
	return model.NewLoginOut(req.Username), nil
}
