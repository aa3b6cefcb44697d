package handler

import (
	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// PersonHandler serves the person endpoints: create, detail by query,
// detail by id, and update.
type PersonHandler struct {
	Handler
	persons *service.PersonService
}

// NewPersonHandler constructs a PersonHandler.
func NewPersonHandler(s *server.Server, persons *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler: NewHandler(s),
		persons: persons,
	}
}

// CreatePersonRequest is the body of POST /person/new: a full Person,
// password included.
type CreatePersonRequest struct {
	model.Person
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePerson projects the validated person to its output shape.
// The password never appears in the response.
func (h *PersonHandler) CreatePerson(c echo.Context, req *CreatePersonRequest) (model.PersonOut, error) {
	return h.persons.Create(req.Person), nil
}

// ShowPersonRequest carries the query parameters of GET /person/detail.
//
// Name is optional; Age is required but has no range, so it is a
// pointer: nil means absent, zero means the client really sent 0.
type ShowPersonRequest struct {
	Name *string `query:"name" validate:"omitempty,min=1,max=50"`
	Age  *int    `query:"age" validate:"required"`
}

func (r *ShowPersonRequest) Validate() error {
	return validation.Struct(r)
}

// ShowPerson returns the single-entry mapping {name: age}. An absent
// name keys the entry under "null", matching how a missing optional
// maps into a JSON object key.
func (h *PersonHandler) ShowPerson(c echo.Context, req *ShowPersonRequest) (map[string]int, error) {
	name := "null"
	if req.Name != nil {
		name = *req.Name
	}

	return map[string]int{name: *req.Age}, nil
}

// PersonDetailRequest carries the path parameter of
// GET /person/detail/:person_id.
type PersonDetailRequest struct {
	PersonID int `param:"person_id" validate:"required,gt=0"`
}

func (r *PersonDetailRequest) Validate() error {
	return validation.Struct(r)
}

// PersonDetail checks the id against the fixed membership set and
// confirms existence. Unknown ids surface as 404 with a fixed message.
func (h *PersonHandler) PersonDetail(c echo.Context, req *PersonDetailRequest) (map[int]string, error) {
	if !h.persons.Exists(req.PersonID) {
		return nil, errs.NewNotFoundError("This person does not exists", false, nil)
	}

	return map[int]string{req.PersonID: "It exists!"}, nil
}

// UpdatePersonRequest is PUT /person/:person_id: the id from the path
// plus a JSON body carrying both a person and a location record.
type UpdatePersonRequest struct {
	PersonID int            `param:"person_id" validate:"required,gt=0"`
	Person   model.Person   `json:"person"`
	Location model.Location `json:"location"`
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// UpdatePerson merges the person and location fields into one mapping
// and returns the union.
func (h *PersonHandler) UpdatePerson(c echo.Context, req *UpdatePersonRequest) (map[string]any, error) {
	return h.persons.Update(req.Person, req.Location), nil
}
