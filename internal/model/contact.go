package model

// ContactForm is the contact submission shape. It arrives as an HTML
// form, hence the form tags next to the constraints.
//
// The name bounds are tighter than Person's on purpose: the contact
// form caps names at 20 characters.
type ContactForm struct {
	FirstName string `form:"first_name" validate:"required,min=1,max=20"`
	LastName  string `form:"last_name" validate:"required,min=1,max=20"`
	Email     string `form:"email" validate:"required,email"`
	Message   string `form:"message" validate:"required,min=20"`
}
