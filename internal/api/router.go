package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/facetime/facetime-api/docs"
	"github.com/facetime/facetime-api/internal/api/handler"
	"github.com/facetime/facetime-api/internal/api/middleware"
	"github.com/facetime/facetime-api/internal/core/domain"
	"github.com/facetime/facetime-api/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Auth     ports.AuthService
	Resolver ports.IdentityResolver
	Products ports.ProductService
	Profiles ports.ProfileService
	// HealthChecks back the readiness probe, keyed by dependency name.
	HealthChecks map[string]handler.HealthCheck

	PublicPaths []string
	CORSOrigins []string
	Logger      zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Metrics())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Authenticate(middleware.AuthConfig{
		Resolver:    deps.Resolver,
		PublicPaths: deps.PublicPaths,
		Logger:      deps.Logger,
	}))

	authHandler := handler.NewAuthHandler(deps.Auth)
	productHandler := handler.NewProductHandler(deps.Products)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	// --- Catalog (identity optional) ---
	api.GET("/products", productHandler.List)

	// --- Protected ---
	api.GET("/mypage", profileHandler.MyPage,
		middleware.RequireIdentity(),
		middleware.RequireAuthority(domain.AuthorityUser),
	)

	// --- Ops ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
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
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
