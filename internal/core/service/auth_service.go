package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/facetime/facetime-api/internal/api/metrics"
	"github.com/facetime/facetime-api/internal/core/domain"
	"github.com/facetime/facetime-api/internal/core/ports"
)

// timingPadPassword is hashed once at construction so logins for unknown
// emails still pay for a bcrypt comparison.
const timingPadPassword = "timing-pad"

// AuthService implements signup, login and bearer-token authentication.
type AuthService struct {
	repo      ports.AccountRepository
	hasher    ports.PasswordHasher
	codec     ports.TokenCodec
	logger    zerolog.Logger
	now       func() time.Time
	dummyHash string
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, codec ports.TokenCodec, logger zerolog.Logger) (*AuthService, error) {
	dummy, err := hasher.Hash(timingPadPassword)
	if err != nil {
		return nil, fmt.Errorf("prepare timing pad: %w", err)
	}
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		codec:     codec,
		logger:    logger,
		now:       time.Now,
		dummyHash: dummy,
	}, nil
}

// Signup creates an account and returns its ID.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (string, error) {
	if email == "" || password == "" || name == "" {
		return "", domain.ErrInvalidInput
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "duplicate").Inc()
		return "", domain.ErrDuplicateAccount
	case !errors.Is(err, domain.ErrAccountNotFound):
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		return "", fmt.Errorf("signup: lookup account: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("signup: hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Save(ctx, &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "duplicate").Inc()
			return "", err
		}
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		return "", fmt.Errorf("signup: save account: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	s.logger.Info().Str("account_id", created.ID).Msg("account created")
	return created.ID, nil
}

// Login verifies the credentials and issues a bearer token for the account.
// Unknown email and wrong password both wrap domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", s.reject(email, domain.ErrInvalidCredentials)
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return "", s.reject(email, domain.ErrAccountNotFound)
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return "", fmt.Errorf("login: lookup account: %w", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", s.reject(email, domain.ErrInvalidCredentials)
	}

	token, err := s.codec.Issue(account.Email, s.now())
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return "", fmt.Errorf("login: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return token, nil
}

// reject logs the real failure reason and hides it behind ErrUnauthorized.
func (s *AuthService) reject(email string, reason error) error {
	label := "invalid_credentials"
	if errors.Is(reason, domain.ErrAccountNotFound) {
		label = "account_not_found"
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", label).Inc()
	s.logger.Info().Str("email", email).Str("reason", reason.Error()).Msg("login rejected")
	return fmt.Errorf("%w: %w", domain.ErrUnauthorized, reason)
}

// Authenticate resolves a bearer token to the identity of its account.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	subject, err := s.codec.Parse(token, s.now())
	if err != nil {
		result := "invalid"
		if errors.Is(err, domain.ErrTokenExpired) {
			result = "expired"
		}
		metrics.TokenValidationsTotal.WithLabelValues(result).Inc()
		return domain.Identity{}, err
	}

	account, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("unresolved").Inc()
		return domain.Identity{}, fmt.Errorf("resolve token subject: %w", err)
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return domain.IdentityOf(account), nil
}
