package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed    = errors.New("token is malformed")
	ErrInvalidSignature  = errors.New("token signature is invalid")
	ErrTokenExpired      = errors.New("token is expired")
	ErrSigningKeyMissing = errors.New("signing key must not be empty")
)

// Identity is the authenticated principal extracted from a verified token.
type Identity struct {
	Email string
}

// Claims describes the JWT payload.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Signer mints and verifies signed access tokens. The key is loaded once
// at construction and never mutated; Signer is safe for concurrent use.
type Signer struct {
	key []byte
}

// NewSigner builds a signer from the configured key.
func NewSigner(key string) (*Signer, error) {
	if key == "" {
		return nil, ErrSigningKeyMissing
	}
	return &Signer{key: []byte(key)}, nil
}

// Mint builds and signs an access token for the subject with the given ttl.
func (s *Signer) Mint(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify parses and validates a token string and returns the identity it
// proves. Failures map to ErrTokenMalformed, ErrInvalidSignature or
// ErrTokenExpired; a token failing any check is rejected outright.
func (s *Signer) Verify(tokenStr string) (Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidSignature
		}
		return s.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrInvalidSignature
		default:
			return Identity{}, ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Email == "" {
		return Identity{}, ErrTokenMalformed
	}
	return Identity{Email: claims.Email}, nil
}
