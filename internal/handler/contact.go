package handler

import (
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// ContactHandler serves the contact form. Besides the form fields it
// demonstrates the two remaining parameter sources: a header
// (User-Agent) and a cookie (ads), both optional.
type ContactHandler struct {
	Handler
	contact *service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(s *server.Server, contact *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(s),
		contact: contact,
	}
}

// ContactRequest is the validated contact form.
type ContactRequest struct {
	model.ContactForm
}

func (r *ContactRequest) Validate() error {
	return validation.Struct(r)
}

// Contact acknowledges the submission by echoing the caller's
// User-Agent header, null when the header is absent. The ads cookie is
// read but unused, it only demonstrates the cookie source.
func (h *ContactHandler) Contact(c echo.Context, req *ContactRequest) (*string, error) {
	// Optional cookie: an error here just means "not sent".
	if ads, err := c.Cookie("ads"); err == nil {
		h.server.Logger.Debug().Str("ads", ads.Value).Msg("ads cookie received")
	}

	// Optional notification to the configured inbox. Never fails the
	// request; see ContactService.Notify.
	h.contact.Notify(req.ContactForm)

	userAgent := c.Request().UserAgent()
	if userAgent == "" {
		return nil, nil
	}

	return &userAgent, nil
}
