package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

// CSRFCookieName is the cookie carrying the server-issued CSRF token.
const CSRFCookieName = "colllect_csrf_token_authenticate"

// CSRFFieldName is the login form field echoing the CSRF token back.
const CSRFFieldName = "csrf_token"

// GenerateCSRFToken creates a cryptographically random CSRF token.
func GenerateCSRFToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CheckCSRF reports whether the form token matches the cookie token.
// Both must be present; a missing cookie (no prior login page load)
// fails closed. Comparison is constant-time.
func CheckCSRF(formToken, cookieToken string) bool {
	if formToken == "" || cookieToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(formToken), []byte(cookieToken)) == 1
}

// SetCSRFCookie issues the CSRF cookie alongside the rendered login form.
// Scoped to the login route, session lifetime only.
func SetCSRFCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     LoginRoute,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearCSRFCookie expires the CSRF cookie after a completed login.
func ClearCSRFCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    "",
		Path:     LoginRoute,
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
