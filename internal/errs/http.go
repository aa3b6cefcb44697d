package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This is reserved for requests the framework could not even bind:
// undecodable JSON, type mismatches, truncated multipart bodies.
// Constraint violations on well-formed requests use
// NewUnprocessableEntityError instead.
func NewBadRequestError(message string, override bool) *HTTPError {
	return &HTTPError{
		// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
	}
}

// NewUnprocessableEntityError creates a 422 Unprocessable Entity HTTPError.
//
// This is the validation failure shape: the request was syntactically
// fine but one or more declared field constraints were not met. The
// errors slice carries one entry per offending field.
func NewUnprocessableEntityError(message string, override bool, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Message:  message,
		Status:   http.StatusUnprocessableEntity,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports an optional custom code override.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	// Optional custom error code, assumed to be pre-formatted by the caller.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error:
// clients do not need stack traces, logs keep the original error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
