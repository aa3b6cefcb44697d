package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreatePerson(t *testing.T) {
	e := newTestRouter(t)

	t.Run("valid person is projected without password", func(t *testing.T) {
		body := `{
			"first_name": "Juan",
			"last_name": "Di Pasquo",
			"age": 21,
			"hair_color": "brown",
			"is_married": false,
			"password": "secretpass"
		}`

		rec := doRequest(t, e, jsonRequest(http.MethodPost, "/person/new", body))

		require.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		decodeJSON(t, rec.Body, &got)

		assert.Equal(t, "Juan", got["first_name"])
		assert.Equal(t, "Di Pasquo", got["last_name"])
		assert.Equal(t, float64(21), got["age"])
		assert.Equal(t, "brown", got["hair_color"])
		assert.Equal(t, false, got["is_married"])
		assert.NotContains(t, got, "password")
	})

	t.Run("optional fields may be omitted", func(t *testing.T) {
		body := `{"first_name": "Rocio", "last_name": "Perez", "age": 30, "password": "longenough"}`

		rec := doRequest(t, e, jsonRequest(http.MethodPost, "/person/new", body))

		require.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		decodeJSON(t, rec.Body, &got)
		assert.Nil(t, got["hair_color"])
		assert.Nil(t, got["is_married"])
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "age above upper bound",
			body:  `{"first_name":"Juan","last_name":"Di Pasquo","age":116,"password":"secretpass"}`,
			field: "age",
		},
		{
			name:  "age zero",
			body:  `{"first_name":"Juan","last_name":"Di Pasquo","age":0,"password":"secretpass"}`,
			field: "age",
		},
		{
			name:  "hair color outside the enum",
			body:  `{"first_name":"Juan","last_name":"Di Pasquo","age":21,"hair_color":"purple","password":"secretpass"}`,
			field: "hair_color",
		},
		{
			name:  "password too short",
			body:  `{"first_name":"Juan","last_name":"Di Pasquo","age":21,"password":"short"}`,
			field: "password",
		},
		{
			name:  "missing first name",
			body:  `{"last_name":"Di Pasquo","age":21,"password":"secretpass"}`,
			field: "first_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, e, jsonRequest(http.MethodPost, "/person/new", tt.body))

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			httpErr := decodeHTTPError(t, rec)
			assert.Equal(t, "Validation failed", httpErr.Message)
			assert.Contains(t, fieldNames(httpErr), tt.field)
		})
	}

	t.Run("malformed JSON is a 400, not a 422", func(t *testing.T) {
		rec := doRequest(t, e, jsonRequest(http.MethodPost, "/person/new", `{"first_name": "Juan"`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestShowPerson(t *testing.T) {
	e := newTestRouter(t)

	t.Run("name and age echo back as a single entry", func(t *testing.T) {
		rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/person/detail?name=Rocio&age=25", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]int
		decodeJSON(t, rec.Body, &got)
		require.Equal(t, map[string]int{"Rocio": 25}, got)
	})

	t.Run("absent name keys the entry under null", func(t *testing.T) {
		rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/person/detail?age=25", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]int
		decodeJSON(t, rec.Body, &got)
		require.Equal(t, map[string]int{"null": 25}, got)
	})

	t.Run("age is required", func(t *testing.T) {
		rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/person/detail?name=Rocio", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		httpErr := decodeHTTPError(t, rec)
		assert.Contains(t, fieldNames(httpErr), "age")
	})

	t.Run("name length is bounded", func(t *testing.T) {
		long := strings.Repeat("x", 51)
		rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/person/detail?age=25&name="+long, nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestPersonDetail(t *testing.T) {
	e := newTestRouter(t)

	t.Run("members of the fixed set exist", func(t *testing.T) {
		for id := 1; id <= 5; id++ {
			rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/person/detail/%d", id), nil))

			require.Equal(t, http.StatusAccepted, rec.Code, "id %d", id)

			var got map[string]string
			decodeJSON(t, rec.Body, &got)
			require.Equal(t, map[string]string{fmt.Sprint(id): "It exists!"}, got)
		}
	})

	t.Run("unknown id is a 404 with the fixed message", func(t *testing.T) {
		rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/person/detail/999", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)

		httpErr := decodeHTTPError(t, rec)
		assert.Equal(t, "This person does not exists", httpErr.Message)
	})

	t.Run("id must be positive", func(t *testing.T) {
		rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/person/detail/0", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("non-numeric id never reaches validation", func(t *testing.T) {
		rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/person/detail/abc", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdatePerson(t *testing.T) {
	e := newTestRouter(t)

	t.Run("returns the union of person and location fields", func(t *testing.T) {
		body := `{
			"person": {
				"first_name": "Juan",
				"last_name": "Di Pasquo",
				"age": 21,
				"password": "secretpass"
			},
			"location": {
				"city": "La Plata",
				"state": "Buenos Aires",
				"country": "Argentina"
			}
		}`

		rec := doRequest(t, e, jsonRequest(http.MethodPut, "/person/123", body))

		require.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		decodeJSON(t, rec.Body, &got)

		assert.Equal(t, "Juan", got["first_name"])
		assert.Equal(t, "Di Pasquo", got["last_name"])
		assert.Equal(t, float64(21), got["age"])
		assert.Equal(t, "La Plata", got["city"])
		assert.Equal(t, "Buenos Aires", got["state"])
		assert.Equal(t, "Argentina", got["country"])
		assert.NotContains(t, got, "password")
	})

	t.Run("location constraints apply", func(t *testing.T) {
		body := `{
			"person": {"first_name":"Juan","last_name":"Di Pasquo","age":21,"password":"secretpass"},
			"location": {"city":"", "state":"Buenos Aires", "country":"Argentina"}
		}`

		rec := doRequest(t, e, jsonRequest(http.MethodPut, "/person/123", body))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		httpErr := decodeHTTPError(t, rec)
		assert.Contains(t, fieldNames(httpErr), "city")
	})

	t.Run("id must be positive", func(t *testing.T) {
		body := `{
			"person": {"first_name":"Juan","last_name":"Di Pasquo","age":21,"password":"secretpass"},
			"location": {"city":"La Plata","state":"Buenos Aires","country":"Argentina"}
		}`

		rec := doRequest(t, e, jsonRequest(http.MethodPut, "/person/0", body))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
