package http

import (
	"github.com/gin-gonic/gin"

	"github.com/colllect/colllect/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// Every route below the middleware is protected; the middleware's
	// public-path list carves out the login flow and health endpoints.
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Login flow (public paths)
	if cfg.LoginController != nil {
		cfg.LoginController.RegisterRoutes(router)
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Post-login landing
	account := NewAccountController()
	router.GET(auth.HomePath, account.Account)
	router.GET("/api/account", account.Account)

	// Colllection endpoints
	if cfg.Store != nil {
		colllections := NewColllectionsController(cfg.Store)
		router.GET("/api/colllections", colllections.ListColllections)
		router.POST("/api/colllections", colllections.CreateColllection)
		router.GET("/api/colllections/:encodedColllectionPath/elements", colllections.ListElements)
		router.POST("/api/colllections/:encodedColllectionPath/elements", colllections.UploadElement)
		router.DELETE("/api/colllections/:encodedColllectionPath/elements/:encodedElementName", colllections.DeleteElement)

		tags := NewTagsController(cfg.Store)
		router.POST("/api/colllections/:encodedColllectionPath/tags", tags.CreateTag)
		router.GET("/api/colllections/:encodedColllectionPath/tags", tags.ListTags)
		router.GET("/api/colllections/:encodedColllectionPath/tags/:encodedTagName", tags.GetTag)
		router.PUT("/api/colllections/:encodedColllectionPath/tags/:encodedTagName", tags.UpdateTag)
		router.DELETE("/api/colllections/:encodedColllectionPath/tags/:encodedTagName", tags.DeleteTag)
	}

	return router
}
