package service

import (
	"context"
	"fmt"

	"github.com/facetime/facetime-api/internal/core/domain"
	"github.com/facetime/facetime-api/internal/core/ports"
)

type ProfileService struct {
	repo ports.AccountRepository
}

func NewProfileService(repo ports.AccountRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetProfile returns the my-page view of the account registered under email.
func (s *ProfileService) GetProfile(ctx context.Context, email string) (*ports.Profile, error) {
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &ports.Profile{
		Email:    account.Email,
		Name:     account.Name,
		SkinType: account.SkinType,
	}, nil
}
