package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "storefront_session"

	identityKey = "identity"
)

// Session resolves the session cookie and stores the caller identity on the
// request context. Requests without a valid session continue as anonymous.
func Session(sessions ports.SessionService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			switch {
			case err == nil:
				c.Set(identityKey, *identity)
			case errors.Is(err, domain.ErrSessionNotFound):
			default:
				log.Warn().Err(err).Msg("session lookup failed, continuing as anonymous")
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Session. ok is false for
// anonymous requests.
func IdentityFrom(c echo.Context) (identity domain.Identity, ok bool) {
	identity, _ = c.Get(identityKey).(domain.Identity)
	return identity, identity.Authenticated()
}

// SetIdentity attaches identity to the request.
func SetIdentity(c echo.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}
