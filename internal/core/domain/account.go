package domain

import "time"

// AuthorityUser is granted to every authenticated account.
const AuthorityUser = "USER"

// Account models a registered user. Email is the login name and never
// changes after creation.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	SkinType     string    `json:"skinType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the authenticated principal the gate attaches to a request.
type Identity struct {
	Email       string
	Authorities []string
}

// IdentityOf projects an account onto the principal used for authorization.
func IdentityOf(a *Account) Identity {
	return Identity{
		Email:       a.Email,
		Authorities: []string{AuthorityUser},
	}
}

// HasAuthority reports whether the identity was granted the given authority.
func (i Identity) HasAuthority(authority string) bool {
	for _, a := range i.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}
