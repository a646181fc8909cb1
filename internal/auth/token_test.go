package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const testKey = "test-signing-key-32-bytes-long!!"

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	signer, err := NewSigner(testKey)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}
	return signer
}

func TestNewSigner_EmptyKey(t *testing.T) {
	_, err := NewSigner("")
	if !errors.Is(err, ErrSigningKeyMissing) {
		t.Errorf("Expected ErrSigningKeyMissing, got %v", err)
	}
}

func TestSigner_RoundTrip(t *testing.T) {
	signer := newTestSigner(t)

	token, err := signer.Mint("a@x.com", 2*time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	identity, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify freshly minted token: %v", err)
	}
	if identity.Email != "a@x.com" {
		t.Errorf("Expected identity email a@x.com, got %s", identity.Email)
	}
}

func TestSigner_Expired(t *testing.T) {
	signer := newTestSigner(t)

	token, err := signer.Mint("a@x.com", -1*time.Second)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	_, err = signer.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestSigner_WrongKey(t *testing.T) {
	signer := newTestSigner(t)
	other, err := NewSigner("another-signing-key-entirely!!!!")
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	token, err := signer.Mint("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	_, err = other.Verify(token)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected ErrInvalidSignature, got %v", err)
	}
}

func TestSigner_TamperedToken(t *testing.T) {
	signer := newTestSigner(t)

	token, err := signer.Mint("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	// Flip one byte at every position; no mutation may verify.
	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, err := signer.Verify(string(mutated))
		if err == nil {
			t.Fatalf("Tampered token verified at byte %d", i)
		}
		if !errors.Is(err, ErrInvalidSignature) && !errors.Is(err, ErrTokenMalformed) && !errors.Is(err, ErrTokenExpired) {
			t.Errorf("Unexpected error for tampered byte %d: %v", i, err)
		}
	}
}

func TestSigner_Malformed(t *testing.T) {
	signer := newTestSigner(t)

	cases := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c.d",
	}
	for _, tc := range cases {
		_, err := signer.Verify(tc)
		if !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("Expected ErrTokenMalformed for %q, got %v", tc, err)
		}
	}
}

func TestSigner_ExpiryMatchesTTL(t *testing.T) {
	signer := newTestSigner(t)

	token, err := signer.Mint("a@x.com", 2*time.Hour)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	claims := parseClaims(t, signer, token)
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 2*time.Hour-5*time.Second || remaining > 2*time.Hour {
		t.Errorf("Expected remaining lifetime near 2h, got %v", remaining)
	}
	if claims.IssuedAt == nil {
		t.Error("Expected IssuedAt to be set")
	}
}

// parseClaims re-verifies a token and returns its claims for inspection.
func parseClaims(t *testing.T, signer *Signer, token string) *Claims {
	t.Helper()
	if _, err := signer.Verify(token); err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	claims, err := decodeClaims(signer, token)
	if err != nil {
		t.Fatalf("failed to decode claims: %v", err)
	}
	return claims
}

// decodeClaims parses a token's claims without the Verify error mapping.
func decodeClaims(signer *Signer, tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return signer.key, nil
	})
	if err != nil {
		return nil, err
	}
	return parsed.Claims.(*Claims), nil
}
