package errs_test

import (
	"net/http"
	"testing"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", errs.MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", errs.MakeUpperCaseWithUnderscores("Unprocessable Entity"))
	assert.Equal(t, "OK", errs.MakeUpperCaseWithUnderscores("OK"))
}

func TestConstructors(t *testing.T) {
	t.Run("bad request", func(t *testing.T) {
		err := errs.NewBadRequestError("broken payload", true)

		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.Equal(t, "BAD_REQUEST", err.Code)
		assert.Equal(t, "broken payload", err.Message)
		assert.True(t, err.Override)
	})

	t.Run("unprocessable entity carries field errors", func(t *testing.T) {
		fields := []errs.FieldError{{Field: "age", Error: "must be greater than 0"}}
		err := errs.NewUnprocessableEntityError("Validation failed", true, fields)

		assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
		assert.Equal(t, "UNPROCESSABLE_ENTITY", err.Code)
		assert.Equal(t, fields, err.Errors)
	})

	t.Run("not found with custom code", func(t *testing.T) {
		code := "PERSON_NOT_FOUND"
		err := errs.NewNotFoundError("This person does not exists", false, &code)

		assert.Equal(t, http.StatusNotFound, err.Status)
		assert.Equal(t, "PERSON_NOT_FOUND", err.Code)
	})

	t.Run("not found default code", func(t *testing.T) {
		err := errs.NewNotFoundError("gone", false, nil)
		assert.Equal(t, "NOT_FOUND", err.Code)
	})

	t.Run("internal server error hides details", func(t *testing.T) {
		err := errs.NewInternalServerError()

		assert.Equal(t, http.StatusInternalServerError, err.Status)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
		assert.False(t, err.Override)
	})
}

func TestHTTPErrorBehavior(t *testing.T) {
	base := errs.NewBadRequestError("original", false)

	t.Run("Error returns the message", func(t *testing.T) {
		assert.Equal(t, "original", base.Error())
	})

	t.Run("WithMessage copies instead of mutating", func(t *testing.T) {
		changed := base.WithMessage("changed")

		assert.Equal(t, "changed", changed.Message)
		assert.Equal(t, "original", base.Message)
		assert.Equal(t, base.Status, changed.Status)
	})

	t.Run("Is matches on type", func(t *testing.T) {
		assert.ErrorIs(t, base, errs.NewInternalServerError())
	})
}
