package domain

import "errors"

var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// ErrUnauthorized is the single outcome reported to callers for any failed
// login, whatever the underlying reason.
var ErrUnauthorized = errors.New("unauthorized")

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)
