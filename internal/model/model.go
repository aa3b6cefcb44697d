// Package model declares the record shapes exchanged with clients.
//
// Every type here is an immutable value record: constructed per
// request from validated input, reshaped, and discarded. Constraints
// live in `validate` struct tags and are enforced by the validation
// package before any handler runs.
package model

// HairColor is the fixed set of accepted hair colors.
type HairColor string

const (
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorBrown  HairColor = "brown"
	HairColorRed    HairColor = "red"
	HairColorWhite  HairColor = "white"
)

// Location describes where a person lives. All fields are required
// and length bounded.
type Location struct {
	City    string `json:"city" validate:"required,min=1,max=58"`
	State   string `json:"state" validate:"required,min=1,max=50"`
	Country string `json:"country" validate:"required,min=1,max=21"`
}

// PersonBase is the shape shared between the input (Person) and the
// output projection (PersonOut).
//
// HairColor and IsMarried are optional, so they are pointers: nil means
// the client did not send them, and they serialize as null.
type PersonBase struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=50"`
	Age       int        `json:"age" validate:"required,gt=0,lte=115"`
	HairColor *HairColor `json:"hair_color" validate:"omitempty,oneof=black blonde brown red white"`
	IsMarried *bool      `json:"is_married"`
}

// Person is the write-path shape. The password is accepted on input
// and never echoed back; see PersonOut.
type Person struct {
	PersonBase
	Password string `json:"password" validate:"required,min=8"`
}

// Out projects a Person to its response shape, stripping the password.
func (p Person) Out() PersonOut {
	return PersonOut{PersonBase: p.PersonBase}
}

// PersonOut is the read-path projection of Person: the same base
// fields with no password.
type PersonOut struct {
	PersonBase
}

// LoginSuccessMessage is the fixed message returned on every login.
const LoginSuccessMessage = "Login Successful"

// LoginOut is the login response: the echoed username plus a fixed
// success message.
type LoginOut struct {
	Username string `json:"username" validate:"required,max=20"`
	Message  string `json:"message"`
}

// NewLoginOut builds a LoginOut with the default success message.
func NewLoginOut(username string) LoginOut {
	return LoginOut{
		Username: username,
		Message:  LoginSuccessMessage,
	}
}
