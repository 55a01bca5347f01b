package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linuskmr/cloud/internal/services"
)

// BasicAuth challenges requests with HTTP basic auth when the auth
// service is enabled. With no credentials configured (the default) it
// passes every request through untouched.
func BasicAuth(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !authService.Enabled() {
				return next(c)
			}

			// Health stays reachable for probes
			if c.Request().URL.Path == "/health" {
				return next(c)
			}

			user, password, ok := c.Request().BasicAuth()
			if !ok || !authService.Validate(user, password) {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="cloud"`)
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			return next(c)
		}
	}
}
