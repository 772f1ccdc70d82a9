package ports

import (
	"context"

	"github.com/facetime/facetime-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// IdentityResolver turns a bearer token into the identity of a live account.
type IdentityResolver interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}
