package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/facetime/facetime-api/internal/core/domain"
	"github.com/facetime/facetime-api/internal/core/ports"
)

const bearerScheme = "bearer"

// AuthConfig configures the authentication gate.
type AuthConfig struct {
	Resolver ports.IdentityResolver
	// PublicPaths skip token inspection entirely. An entry ending in "/" is a
	// prefix; any other entry must match the path exactly.
	PublicPaths []string
	Logger      zerolog.Logger
}

// Authenticate resolves the bearer token, when present and valid, into an
// identity attached to the request. It never rejects a request because of
// the token: routes that need an identity enforce it with RequireIdentity.
// Only a store failure during resolution aborts the request.
func Authenticate(cfg AuthConfig) echo.MiddlewareFunc {
	public := append([]string(nil), cfg.PublicPaths...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method == http.MethodOptions || isPublicPath(req.URL.Path, public) {
				return next(c)
			}

			token, ok := bearerToken(req.Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			id, err := cfg.Resolver.Authenticate(req.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired):
					cfg.Logger.Debug().Err(err).Str("path", req.URL.Path).Msg("bearer token rejected")
				case errors.Is(err, domain.ErrAccountNotFound):
					// Accounts are never deleted, so a verified subject without
					// an account means the signing secret or the store is off.
					cfg.Logger.Error().Err(err).Str("path", req.URL.Path).Msg("token subject has no account")
				default:
					return fmt.Errorf("authenticate request: %w", err)
				}
				return next(c)
			}

			SetIdentity(c, id)
			return next(c)
		}
	}
}

// RequireIdentity rejects requests that reach it without an identity.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}

// RequireAuthority lets the request through when the identity holds any of
// the given authorities.
func RequireAuthority(authorities ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			for _, a := range authorities {
				if id.HasAuthority(a) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func isPublicPath(path string, public []string) bool {
	for _, p := range public {
		switch {
		case p == "":
		case strings.HasSuffix(p, "/") && strings.HasPrefix(path, p):
			return true
		case path == p:
			return true
		}
	}
	return false
}
