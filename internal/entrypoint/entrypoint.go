package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/colllect/colllect/internal/audit"
	"github.com/colllect/colllect/internal/auth"
	"github.com/colllect/colllect/internal/config"
	"github.com/colllect/colllect/internal/database"
	"github.com/colllect/colllect/internal/database/users"
	"github.com/colllect/colllect/internal/entities"
	http_controllers "github.com/colllect/colllect/internal/http"
	"github.com/colllect/colllect/internal/scheduler"
	"github.com/colllect/colllect/internal/storage"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Colllect v%s", version)

	// The server must not come up without a signing key.
	signer, err := auth.NewSigner(cfg.Auth.SigningKey)
	if err != nil {
		log.Fatalf("Refusing to start: %v (set AUTH_SIGNING_KEY)", err)
	}

	if cfg.Auth.BcryptCost > 0 {
		entities.BcryptCost = cfg.Auth.BcryptCost
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	store, err := storage.NewLocalStore(cfg.Storage.Root)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	trail := audit.NewTrail(cfg.Audit.Dir)

	// Wire up the authentication core
	userRepo := users.NewRepository(db.DB)
	verifier := auth.NewCredentialVerifier(userRepo)
	validator := auth.NewDualChannelValidator(signer)
	authMiddleware := auth.NewMiddleware(validator)
	loginController := auth.NewLoginController(verifier, signer, trail, cfg.Auth)

	// Audit retention purge
	cleanup := scheduler.NewAuditCleanupScheduler(trail, cfg.Audit.RetentionDays, cfg.Audit.CleanupSchedule)
	if err := cleanup.Start(); err != nil {
		log.Fatalf("Failed to start audit cleanup scheduler: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Database:        db,
		Store:           store,
		LoginController: loginController,
		AuthMiddleware:  authMiddleware,
		AuthConfig:      cfg.Auth,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		cleanup.Stop()
	}

	Serve(router, cfg, onShutdown)
}
