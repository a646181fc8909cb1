package auth

import (
	"errors"
	"net/http"
	"strings"
)

// AccessTokenCookieName is the cookie carrying the signed access token
// for browser navigation.
const AccessTokenCookieName = "colllect_access_token"

// ErrUnauthenticated is returned when neither credential carrier yields
// a valid token.
var ErrUnauthenticated = errors.New("unauthenticated")

// Channel indicates which carrier proved the identity.
type Channel string

const (
	ChannelNone   Channel = "none"
	ChannelCookie Channel = "cookie"
	ChannelBearer Channel = "bearer"
)

// DualChannelValidator extracts an identity from either the access token
// cookie or the Authorization: Bearer header. It makes no authorization
// decisions; it only establishes who the caller is.
type DualChannelValidator struct {
	signer *Signer
}

// NewDualChannelValidator creates a new validator.
func NewDualChannelValidator(signer *Signer) *DualChannelValidator {
	return &DualChannelValidator{signer: signer}
}

// Authenticate tries the cookie first, then the bearer header. A carrier
// that fails verification does not abort the check; the other is still
// tried. Both failing yields ErrUnauthenticated.
func (v *DualChannelValidator) Authenticate(r *http.Request) (Identity, Channel, error) {
	if cookie, err := r.Cookie(AccessTokenCookieName); err == nil && cookie.Value != "" {
		if identity, err := v.signer.Verify(cookie.Value); err == nil {
			return identity, ChannelCookie, nil
		}
	}

	if token := bearerToken(r); token != "" {
		if identity, err := v.signer.Verify(token); err == nil {
			return identity, ChannelBearer, nil
		}
	}

	return Identity{}, ChannelNone, ErrUnauthenticated
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// SetAccessTokenCookie delivers the signed token for browser navigation.
// maxAge 0 means a session cookie; otherwise it must match the token ttl.
func SetAccessTokenCookie(w http.ResponseWriter, token string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAccessTokenCookie expires the access token cookie on logout.
func ClearAccessTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
