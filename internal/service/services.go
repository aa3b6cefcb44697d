package service

import (
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

// Services is a container that groups all business services, so router
// and handler wiring pass one object around instead of many.
type Services struct {
	Persons *PersonService
	Contact *ContactService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Persons: NewPersonService(s, repos),
		Contact: NewContactService(s),
	}, nil
}
