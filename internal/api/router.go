package api

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/storefront-system/docs"
	"github.com/99minutos/storefront-system/internal/api/handler"
	"github.com/99minutos/storefront-system/internal/api/middleware"
	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
	"github.com/99minutos/storefront-system/internal/infrastructure/http/handlers"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Auth     ports.AuthService
	Sessions ports.SessionService
	Catalog  ports.CatalogService
	Checkout ports.CheckoutService

	Cookie handler.CookieConfig
	Health []handlers.Dependency

	// StaticDir optionally holds the storefront pages: login.html,
	// register.html, products.html and a static/ directory of assets.
	StaticDir string

	// Registerer and Gatherer back the HTTP metrics and /metrics. They
	// default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront",
		Registerer: deps.Registerer,
	}))
	e.Use(middleware.Session(deps.Sessions, deps.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions, deps.Cookie, deps.Log)
	productHandler := handler.NewProductHandler(deps.Catalog)
	checkoutHandler := handler.NewCheckoutHandler(deps.Checkout)

	requireLogin := middleware.RequireAuthenticated("/login")
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Catalog and checkout ---
	e.GET("/api/products", productHandler.List, requireLogin)
	e.POST("/api/products", productHandler.Upsert, requireLogin, requireAdmin)
	e.POST("/checkout", checkoutHandler.Checkout, requireLogin)

	// --- Pages ---
	if deps.StaticDir != "" {
		e.File("/login", filepath.Join(deps.StaticDir, "login.html"))
		e.File("/register", filepath.Join(deps.StaticDir, "register.html"))
		e.File("/products", filepath.Join(deps.StaticDir, "products.html"), requireLogin)
		e.Static("/static", filepath.Join(deps.StaticDir, "static"))
	}

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Health...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
