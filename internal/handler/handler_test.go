package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/router"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full application stack around a quiet logger,
// so tests exercise the real middleware chain, error funnel, and
// route registrations.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        30,
			CORSAllowedOrigins: []string{"*"},
			// Generous enough that sequential test requests never trip it.
			RateLimitPerSecond: 100,
		},
		Integration:   &config.IntegrationConfig{},
		Observability: config.DefaultObservabilityConfig(),
	}

	logger := zerolog.Nop()

	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	require.NoError(t, err)

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	return router.New(middlewares, handlers)
}

// doRequest runs req through the router and returns the recorder.
func doRequest(t *testing.T, e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeJSON decodes the response body into out.
func decodeJSON(t *testing.T, body io.Reader, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(out))
}

// decodeHTTPError decodes the error funnel's response shape.
func decodeHTTPError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var httpErr errs.HTTPError
	decodeJSON(t, rec.Body, &httpErr)
	return httpErr
}

// fieldNames collects the field names of a validation failure.
func fieldNames(httpErr errs.HTTPError) []string {
	names := make([]string, 0, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		names = append(names, fe.Field)
	}
	return names
}

func TestHome(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeJSON(t, rec.Body, &body)
	require.Equal(t, map[string]string{"Hello": "World"}, body)
}

func TestUnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	httpErr := decodeHTTPError(t, rec)
	require.Equal(t, "Route not found", httpErr.Message)
}

func TestHealth(t *testing.T) {
	e := newTestRouter(t)

	rec := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeJSON(t, rec.Body, &body)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "test", body["environment"])
}
