package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/facetime/facetime-api/internal/core/domain"
)

const (
	defaultTokenTTL  = time.Hour
	defaultClockSkew = 2 * time.Minute
)

// MinSecretLength is the block size of SHA-256, the HMAC hash behind HS256.
const MinSecretLength = sha256.BlockSize

var ErrWeakSecret = errors.New("jwt secret is too short")

// TokenConfig is loaded once at startup and handed to NewJWTCodec.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	// ClockSkew bounds how far in the future an issued-at claim may lie.
	ClockSkew time.Duration
}

// JWTCodec issues and verifies HS256-signed bearer tokens.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	skew   time.Duration
}

func NewJWTCodec(cfg TokenConfig) (*JWTCodec, error) {
	if len(cfg.Secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(cfg.Secret))
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	skew := cfg.ClockSkew
	if skew < 0 {
		skew = defaultClockSkew
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	return &JWTCodec{secret: secret, ttl: ttl, skew: skew}, nil
}

// TTL returns the lifetime given to issued tokens.
func (c *JWTCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for subject, valid from now until at least now+TTL.
// Claims carry whole seconds, so exp is rounded up to the next second.
func (c *JWTCodec) Issue(subject string, now time.Time) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("issue token: %w: empty subject", domain.ErrInvalidInput)
	}

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(c.ttl))),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func ceilSecond(t time.Time) time.Time {
	floor := t.Truncate(time.Second)
	if floor.Equal(t) {
		return t
	}
	return floor.Add(time.Second)
}

// Parse verifies token at instant now and returns its subject.
// Expired tokens yield domain.ErrTokenExpired; every other rejection wraps
// domain.ErrTokenInvalid.
func (c *JWTCodec) Parse(token string, now time.Time) (string, error) {
	if token == "" {
		return "", domain.ErrTokenInvalid
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	// Expiry is strict; the skew only tolerates issuers with a fast clock.
	if claims.IssuedAt != nil && claims.IssuedAt.After(now.Add(c.skew)) {
		return "", fmt.Errorf("%w: issued in the future", domain.ErrTokenInvalid)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", domain.ErrTokenInvalid)
	}

	return claims.Subject, nil
}
