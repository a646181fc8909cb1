package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated caller
const (
	ContextKeyEmail   = "auth_email"
	ContextKeyChannel = "auth_channel"
)

// Middleware authenticates every request through the dual-channel
// validator before it reaches a protected handler.
type Middleware struct {
	validator   *DualChannelValidator
	publicPaths map[string]bool
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(validator *DualChannelValidator) *Middleware {
	publicPaths := map[string]bool{
		LoginRoute:     true,
		"/logout":      true,
		"/health":      true,
		"/ping":        true,
		"/favicon.ico": true,
	}

	return &Middleware{
		validator:   validator,
		publicPaths: publicPaths,
	}
}

// Handler returns a Gin middleware handler that authenticates requests.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		identity, channel, err := m.validator.Authenticate(c.Request)
		if err == nil {
			c.Set(ContextKeyEmail, identity.Email)
			c.Set(ContextKeyChannel, channel)
			c.Next()
			return
		}

		if m.isAPIRequest(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		// Browser request - enter the login flow, carrying the
		// originally requested URI for post-login restoration.
		c.Redirect(http.StatusFound, LoginRoute+"?"+TargetPathParam+"="+url.QueryEscape(c.Request.RequestURI))
		c.Abort()
	}
}

// isPublicPath checks if a path is reachable without authentication.
func (m *Middleware) isPublicPath(path string) bool {
	if m.publicPaths[path] {
		return true
	}
	if strings.HasPrefix(path, "/static/") {
		return true
	}
	return false
}

// isAPIRequest determines if this is an API request vs a browser request.
func (m *Middleware) isAPIRequest(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	// A bearer attempt, even an invalid one, marks an API client
	if c.GetHeader("Authorization") != "" {
		return true
	}
	return false
}

// Helper functions to extract auth data from the Gin context

// GetIdentity retrieves the authenticated identity from the context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	email := GetEmail(c)
	if email == "" {
		return Identity{}, false
	}
	return Identity{Email: email}, true
}

// GetEmail retrieves the authenticated caller's email from the context.
func GetEmail(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyEmail); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

// GetChannel retrieves the credential carrier used, ChannelNone if the
// request was not authenticated.
func GetChannel(c *gin.Context) Channel {
	if v, exists := c.Get(ContextKeyChannel); exists {
		if channel, ok := v.(Channel); ok {
			return channel
		}
	}
	return ChannelNone
}
