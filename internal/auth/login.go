package auth

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/colllect/colllect/internal/audit"
	"github.com/colllect/colllect/internal/config"
)

const (
	// LoginRoute is the login entry point.
	LoginRoute = "/login"

	// HomePath is the post-login redirect target when no target path
	// was requested.
	HomePath = "/login/account"

	// RememberMeField is the opt-in form field extending the token and
	// cookie lifetime from hours to weeks.
	RememberMeField = "colllect_remember_me"

	// TargetPathParam carries the originally requested URI through the
	// login round-trip.
	TargetPathParam = "_target_path"
)

var loginTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head><title>Sign in - Colllect</title></head>
<body>
<form method="POST" action="/login">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
  <input type="hidden" name="_target_path" value="{{.TargetPath}}">
  <label><input type="checkbox" name="colllect_remember_me" value="1"> Remember me</label>
  <button type="submit">Sign in</button>
</form>
</body>
</html>`))

// isLocalPath validates that a redirect path is local to prevent open
// redirect attacks.
func isLocalPath(path string) bool {
	if path == "" {
		return false
	}
	if !strings.HasPrefix(path, "/") {
		return false
	}
	// Reject protocol-relative URLs (//evil.com)
	if strings.HasPrefix(path, "//") {
		return false
	}
	if strings.Contains(path, "://") {
		return false
	}
	if strings.Contains(path, "\\") {
		return false
	}
	return true
}

// sanitizeRedirectPath returns a safe redirect path, defaulting to the
// post-login home.
func sanitizeRedirectPath(path string) string {
	if isLocalPath(path) {
		return path
	}
	return HomePath
}

// parseBoolField interprets checkbox-style form values.
func parseBoolField(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// LoginController drives the login flow: CSRF check, credential check,
// token mint, cookie emission.
type LoginController struct {
	verifier *CredentialVerifier
	signer   *Signer
	trail    *audit.Trail
	cfg      config.Auth
}

// NewLoginController creates a new login controller.
func NewLoginController(verifier *CredentialVerifier, signer *Signer, trail *audit.Trail, cfg config.Auth) *LoginController {
	return &LoginController{
		verifier: verifier,
		signer:   signer,
		trail:    trail,
		cfg:      cfg,
	}
}

// RegisterRoutes registers the login flow routes on the router.
func (lc *LoginController) RegisterRoutes(router *gin.Engine) {
	router.GET(LoginRoute, lc.LoginPage)
	router.POST(LoginRoute, lc.Login)
	router.GET("/logout", lc.Logout)
	router.POST("/logout", lc.Logout)
}

// LoginPage renders the login form and issues a fresh CSRF cookie.
func (lc *LoginController) LoginPage(c *gin.Context) {
	token, err := GenerateCSRFToken()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to prepare login form")
		return
	}
	SetCSRFCookie(c.Writer, token, lc.cfg.SecureCookies)

	c.Header("Content-Type", "text/html; charset=utf-8")
	err = loginTemplate.Execute(c.Writer, gin.H{
		"CSRFToken":  token,
		"TargetPath": sanitizeRedirectPath(c.Query(TargetPathParam)),
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Template error: %v", err)
	}
}

// Login handles the login form submission.
//
// The flow walks credential extraction, CSRF check, credential check and
// token issuance in order; any failure redirects back to the login entry
// point without issuing anything. The mint is the last step before the
// response is built, so a request aborted earlier never emits a token.
func (lc *LoginController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	formToken := c.PostForm(CSRFFieldName)
	cookieToken, _ := c.Cookie(CSRFCookieName)
	remembered := parseBoolField(c.PostForm(RememberMeField))

	target := c.PostForm(TargetPathParam)
	if target == "" {
		target = c.Query(TargetPathParam)
	}

	if !CheckCSRF(formToken, cookieToken) {
		lc.trail.RecordFailure(email, c.ClientIP(), "csrf token mismatch")
		c.Redirect(http.StatusFound, LoginRoute)
		return
	}

	identity, err := lc.verifier.Verify(email, password)
	if err != nil {
		// The redirect is identical for unknown email and wrong
		// password; the distinction lives in the audit trail only.
		if errors.Is(err, ErrBadCredentials) {
			lc.trail.RecordFailure(email, c.ClientIP(), err.Error())
		} else {
			lc.trail.RecordFailure(email, c.ClientIP(), "user lookup error")
		}
		c.Redirect(http.StatusFound, LoginRoute)
		return
	}

	// Token TTL and cookie max-age are decided together: a plain login
	// gets a short-lived token in a session cookie, a remembered login
	// gets both stretched to the remember-me lifetime.
	ttl := lc.cfg.AccessTokenTTL
	maxAge := 0
	if remembered {
		ttl = lc.cfg.RememberMeTTL
		maxAge = int(ttl / time.Second)
	}

	token, err := lc.signer.Mint(identity.Email, ttl)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to issue access token")
		return
	}

	ClearCSRFCookie(c.Writer, lc.cfg.SecureCookies)
	SetAccessTokenCookie(c.Writer, token, maxAge, lc.cfg.SecureCookies)
	lc.trail.RecordSuccess(identity.Email, c.ClientIP(), remembered)

	c.Redirect(http.StatusFound, sanitizeRedirectPath(target))
}

// Logout clears the access token cookie and returns to the login page.
func (lc *LoginController) Logout(c *gin.Context) {
	ClearAccessTokenCookie(c.Writer, lc.cfg.SecureCookies)
	c.Redirect(http.StatusFound, LoginRoute)
}
