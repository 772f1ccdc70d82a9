package service

import (
	"context"
	"errors"
	"testing"

	"github.com/facetime/facetime-api/internal/core/domain"
)

func TestProfileService_GetProfile(t *testing.T) {
	repo := newStubAccountRepo()
	repo.accounts["a@x.com"] = &domain.Account{ID: "1", Email: "a@x.com", PasswordHash: "hash", Name: "A", SkinType: "oily"}
	svc := NewProfileService(repo)

	p, err := svc.GetProfile(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if p.Email != "a@x.com" || p.Name != "A" || p.SkinType != "oily" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestProfileService_NotFound(t *testing.T) {
	svc := NewProfileService(newStubAccountRepo())

	if _, err := svc.GetProfile(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestProfileService_EmptyEmail(t *testing.T) {
	svc := NewProfileService(newStubAccountRepo())

	if _, err := svc.GetProfile(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
