package ports

import "context"

// Profile is the my-page view of an account. It never carries credentials.
type Profile struct {
	Email    string
	Name     string
	SkinType string
}

type ProfileService interface {
	GetProfile(ctx context.Context, email string) (*Profile, error)
}
