package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLogin(t *testing.T) {
	e := newTestRouter(t)

	t.Run("echoes the username with the fixed message", func(t *testing.T) {
		rec := doRequest(t, e, formRequest("/login", url.Values{
			"username": {"Miguel2021"},
			"password": {"12345678"},
		}))

		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]string
		decodeJSON(t, rec.Body, &got)
		require.Equal(t, map[string]string{
			"username": "Miguel2021",
			"message":  "Login Successful",
		}, got)
	})

	tests := []struct {
		name  string
		form  url.Values
		field string
	}{
		{
			name:  "missing username",
			form:  url.Values{"password": {"12345678"}},
			field: "username",
		},
		{
			name:  "missing password",
			form:  url.Values{"username": {"Miguel2021"}},
			field: "password",
		},
		{
			name:  "username too long",
			form:  url.Values{"username": {strings.Repeat("m", 21)}, "password": {"12345678"}},
			field: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, e, formRequest("/login", tt.form))

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			httpErr := decodeHTTPError(t, rec)
			assert.Contains(t, fieldNames(httpErr), tt.field)
		})
	}
}
