package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// RBAC enforces role-based access control. Anonymous callers are denied like
// any other role outside allowedRoles.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if _, allowedRole := allowed[identity.Role]; !ok || !allowedRole {
				return c.JSON(http.StatusForbidden, map[string]string{"message": domain.ErrAccessDenied.Message})
			}
			return next(c)
		}
	}
}
