package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuthenticated redirects anonymous callers to loginPath.
func RequireAuthenticated(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}
