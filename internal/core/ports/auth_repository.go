package ports

import (
	"context"

	"github.com/facetime/facetime-api/internal/core/domain"
)

// AccountRepository defines the credential store used by the auth core.
type AccountRepository interface {
	// FindByEmail returns domain.ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Save inserts the account if its email is unused and returns it with its
	// assigned ID. An existing email yields domain.ErrDuplicateAccount.
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
