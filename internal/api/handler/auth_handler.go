package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront-system/internal/api/middleware"
	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
)

const (
	loginPath    = "/login"
	productsPath = "/products"
)

// CookieConfig controls the session cookie written at login.
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionService
	cookie      CookieConfig
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionService, cookie CookieConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, cookie: cookie, log: log}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Registration successful! You can now log in."})
}

// Login checks credentials and starts a cookie session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidCredentials
	}

	ctx := c.Request().Context()
	identity, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}

	// A previous session on this client is replaced, never reused.
	if old, err := c.Cookie(middleware.SessionCookieName); err == nil {
		_ = h.sessions.End(ctx, old.Value)
	}

	token, err := h.sessions.Start(ctx, *identity)
	if err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie(token, int(h.cookie.TTL.Seconds())))

	return c.JSON(http.StatusOK, loginResponse{
		Success:    true,
		Message:    "Login successful!",
		RedirectTo: productsPath,
	})
}

// Logout ends the session and sends the client back to the login page.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Failure      500  {string}  string  "Could not log out."
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.sessions.End(c.Request().Context(), cookie.Value); err != nil {
			h.log.Error().Err(err).Msg("logout failed")
			return c.String(http.StatusInternalServerError, "Could not log out.")
		}
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.Redirect(http.StatusFound, loginPath)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
