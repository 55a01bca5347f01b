package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/linuskmr/cloud/internal/services"
	"github.com/stretchr/testify/assert"
)

func newAuthTestServer(authService *services.AuthService) *echo.Echo {
	e := echo.New()
	e.Use(BasicAuth(authService))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "content")
	})
	return e
}

func TestBasicAuthDisabledPassesThrough(t *testing.T) {
	e := newAuthTestServer(services.NewAuthService("", ""))

	req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBasicAuthChallengesWithoutCredentials(t *testing.T) {
	e := newAuthTestServer(services.NewAuthService("admin", "secret"))

	req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderWWWAuthenticate), "Basic")
}

func TestBasicAuthAcceptsValidCredentials(t *testing.T) {
	e := newAuthTestServer(services.NewAuthService("admin", "secret"))

	req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBasicAuthRejectsWrongPassword(t *testing.T) {
	e := newAuthTestServer(services.NewAuthService("admin", "secret"))

	req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBasicAuthSkipsHealth(t *testing.T) {
	e := newAuthTestServer(services.NewAuthService("admin", "secret"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
