package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Storage
		Auth
		Audit
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Storage struct {
		Root string // Root directory for colllection files
	}
	Auth struct {
		SigningKey     string        // HS256 key for access tokens; startup fails without it
		AccessTokenTTL time.Duration // Lifetime of a non-remembered login (default: 2h)
		RememberMeTTL  time.Duration // Lifetime of a remembered login (default: 720h)
		BcryptCost     int
		SecureCookies  bool // Set to false for local dev without HTTPS
	}
	Audit struct {
		Dir             string
		RetentionDays   int    // Days to keep login audit events (default: 30)
		CleanupSchedule string // Cron format: "30 3 * * *" = daily at 03:30
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8090)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("storage_root", DefaultStorageRoot)
	v.SetDefault("audit_dir", "./audit")
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("audit_cleanup_schedule", "30 3 * * *")

	// Auth defaults
	v.SetDefault("auth_signing_key", "")         // Required, no usable default
	v.SetDefault("auth_access_token_ttl", "2h")  // Plain login
	v.SetDefault("auth_remember_me_ttl", "720h") // Remember-me login (30 days)
	v.SetDefault("auth_bcrypt_cost", 12)         // bcrypt cost factor
	v.SetDefault("auth_secure_cookies", true)    // HTTPS-only cookies

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Storage: Storage{
			Root: v.GetString("STORAGE_ROOT"),
		},
		Auth: Auth{
			SigningKey:     v.GetString("AUTH_SIGNING_KEY"),
			AccessTokenTTL: v.GetDuration("AUTH_ACCESS_TOKEN_TTL"),
			RememberMeTTL:  v.GetDuration("AUTH_REMEMBER_ME_TTL"),
			BcryptCost:     v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies:  v.GetBool("AUTH_SECURE_COOKIES"),
		},
		Audit: Audit{
			Dir:             v.GetString("AUDIT_DIR"),
			RetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("AUDIT_CLEANUP_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
