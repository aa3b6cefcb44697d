package handler

import (
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Home    *HomeHandler    // Home serves the greeting endpoint.
	Person  *PersonHandler  // Person serves the person CRUD-ish endpoints.
	Auth    *AuthHandler    // Auth serves the form login endpoint.
	Contact *ContactHandler // Contact serves the contact form endpoint.
	Upload  *UploadHandler  // Upload serves the image upload endpoint.
	Health  *HealthHandler  // Health serves the service health endpoint.
}

// NewHandlers constructs the handler container.
//
// Parameters:
//   - s: application container (logger/config/etc.)
//   - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Person:  NewPersonHandler(s, services.Persons),
		Auth:    NewAuthHandler(s),
		Contact: NewContactHandler(s, services.Contact),
		Upload:  NewUploadHandler(s),
		Health:  NewHealthHandler(s),
	}
}
