package repository

import (
	"github.com/deppfellow/person-api/internal/server"
)

// knownPersonIDs is the fixed membership set standing in for a persons
// table. Read-only process-wide; checked, never written.
var knownPersonIDs = []int{1, 2, 3, 4, 5}

// PersonRepository answers existence questions about person ids.
type PersonRepository struct {
	server *server.Server
}

// NewPersonRepository constructs a PersonRepository.
func NewPersonRepository(s *server.Server) *PersonRepository {
	return &PersonRepository{server: s}
}

// Exists reports whether the given person id is part of the membership
// set. A linear scan over five constants beats a map here.
func (r *PersonRepository) Exists(personID int) bool {
	for _, id := range knownPersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}

// Repositories is a container for all repository instances.
//
// It exists to establish the dependency injection shape early: services
// accept this container, and future repositories get initialized here
// with whatever shared deps they need from *server.Server.
type Repositories struct {
	Persons *PersonRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Persons: NewPersonRepository(s),
	}
}
