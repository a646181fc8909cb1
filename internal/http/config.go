package http

import (
	"github.com/colllect/colllect/internal/auth"
	"github.com/colllect/colllect/internal/config"
	"github.com/colllect/colllect/internal/database"
	"github.com/colllect/colllect/internal/storage"
)

// RouterConfig contains all dependencies and configuration needed to
// create the HTTP router.
type RouterConfig struct {
	Database *database.Database
	Store    storage.Store

	// Authentication
	LoginController *auth.LoginController
	AuthMiddleware  *auth.Middleware
	AuthConfig      config.Auth

	Version string
}
