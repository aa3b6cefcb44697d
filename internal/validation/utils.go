package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance. It is read-only after
// init and safe for concurrent use.
var validate = newValidator()

// newValidator builds the shared validator and teaches it to report
// wire names (first_name) instead of Go field names (FirstName) by
// reading the binding tag of the offending field.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,gt=0"`)
//   - Implement Validate() error that runs Struct(req)
//   - Return validator.ValidationErrors (or CustomValidationErrors for
//     constraints tags cannot express)
type Validatable interface {
	Validate() error
}

// Struct runs tag-based validation on v using the shared validator.
// Request types call this from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// CustomValidationError represents a single validation issue for a
// specific field, used for rules that cannot be expressed via tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from path params,
//     query string, and body (JSON or form) according to struct tags.
//  2. payload.Validate() applies the declared constraint rules.
//  3. On constraint violations, returns *errs.HTTPError (422) with one
//     entry per offending field.
//
// A request the framework cannot even bind (undecodable JSON, type
// mismatch in a path or query param) is a 400, not a 422: the payload
// never reached the constraint-checking stage.
//
// NOTE: c.Bind expects a pointer to a struct. If payload is not a
// pointer, binding will fail or behave unexpectedly.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(msg, true, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts a client-safe message from Echo's bind error.
//
// Echo wraps bind failures in *echo.HTTPError with a string message.
// Anything else gets a fixed message rather than leaking internals.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return http.StatusText(http.StatusBadRequest)
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	// validator.ValidationErrors is returned when struct tag validation
	// fails; everything else here must be CustomValidationErrors.
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		customValidationErrors := err.(CustomValidationErrors)
		for _, cerr := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: cerr.Field,
				Error: cerr.Message,
			})
		}
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, ferr := range validationErrors {
		field := fieldName(ferr)
		var msg string

		switch ferr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value for numbers.
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ferr.Param())
			}

		case "max":
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ferr.Param())
			}

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", ferr.Param())

		case "lte":
			msg = fmt.Sprintf("must be less than or equal to %s", ferr.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ferr.Param())

		case "email":
			msg = "must be a valid email address"

		default:
			// Fallback for tags not explicitly handled above. Includes
			// tag name and param (if any) to help debugging.
			if ferr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, ferr.Tag(), ferr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, ferr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	if fieldErrors == nil {
		return "", nil
	}

	return "Validation failed", fieldErrors
}

// fieldName returns the wire name of the offending field. Thanks to
// the registered tag name func this is already the binding tag value
// (first_name, person_id, ...), with the Go name as a last resort.
func fieldName(ferr validator.FieldError) string {
	return ferr.Field()
}
