package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront-system/internal/api/middleware"
	"github.com/99minutos/storefront-system/internal/core/domain"
)

// caller returns the identity the Session middleware attached to the request.
// Anonymous requests yield the zero identity, which every service rejects
// where it matters.
func caller(c echo.Context) domain.Identity {
	identity, _ := middleware.IdentityFrom(c)
	return identity
}
