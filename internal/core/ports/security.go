package ports

import "time"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenCodec issues and verifies bearer tokens.
type TokenCodec interface {
	Issue(subject string, now time.Time) (string, error)
	Parse(token string, now time.Time) (string, error)
}
