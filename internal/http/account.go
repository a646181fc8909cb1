package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colllect/colllect/internal/auth"
)

// AccountController serves the post-login account endpoint.
type AccountController struct{}

// NewAccountController creates a new controller.
func NewAccountController() *AccountController {
	return &AccountController{}
}

// Account returns the authenticated caller's identity and the channel
// that proved it.
func (ac *AccountController) Account(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   identity.Email,
		"channel": auth.GetChannel(c),
	})
}
