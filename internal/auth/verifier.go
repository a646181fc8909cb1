package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/colllect/colllect/internal/entities"
)

// ErrBadCredentials is the only credential failure callers see. Whether
// the email was unknown or the password wrong stays server-side, in the
// wrapped detail logged to the audit trail.
var ErrBadCredentials = errors.New("invalid credentials")

// UserLookup defines the user store dependency of the verifier.
type UserLookup interface {
	GetUserByEmail(email string) (*entities.User, error)
}

// CredentialVerifier checks a submitted email/password pair against the
// user store.
type CredentialVerifier struct {
	users UserLookup
}

// NewCredentialVerifier creates a new verifier.
func NewCredentialVerifier(users UserLookup) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// Verify looks up the user by email and compares the plaintext password
// against the stored hash. Unknown email and wrong password both come
// back as ErrBadCredentials.
func (v *CredentialVerifier) Verify(email, password string) (Identity, error) {
	user, err := v.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, fmt.Errorf("%w: unknown email", ErrBadCredentials)
		}
		return Identity{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return Identity{}, fmt.Errorf("%w: password mismatch", ErrBadCredentials)
	}

	return Identity{Email: user.Email}, nil
}
