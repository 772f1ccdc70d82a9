package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/facetime/facetime-api/internal/core/domain"
)

const identityKey = "identity"

// SetIdentity attaches the authenticated identity to the request.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity attached by Authenticate, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}
