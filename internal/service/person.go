package service

import (
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

// PersonService implements the person operations. Every method is a
// pure transform over validated input: nothing is persisted anywhere.
type PersonService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewPersonService constructs a PersonService.
func NewPersonService(s *server.Server, repos *repository.Repositories) *PersonService {
	return &PersonService{
		server: s,
		repos:  repos,
	}
}

// Create returns the person projected to its output shape. The
// password is dropped by the projection and never leaves the server.
func (ps *PersonService) Create(person model.Person) model.PersonOut {
	return person.Out()
}

// Exists reports whether personID is part of the fixed membership set.
func (ps *PersonService) Exists(personID int) bool {
	return ps.repos.Persons.Exists(personID)
}

// Update merges the person fields and the location fields into a
// single mapping: person fields first, location fields overlaid. The
// password is excluded from the merge; it is write-only everywhere in
// this API.
func (ps *PersonService) Update(person model.Person, location model.Location) map[string]any {
	return map[string]any{
		"first_name": person.FirstName,
		"last_name":  person.LastName,
		"age":        person.Age,
		"hair_color": person.HairColor,
		"is_married": person.IsMarried,
		"city":       location.City,
		"state":      location.State,
		"country":    location.Country,
	}
}
