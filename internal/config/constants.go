package config

const (
	// DefaultDatabasePath is the default SQLite database location.
	DefaultDatabasePath = "./colllect.db"

	// DefaultStorageRoot is the default root for colllection files.
	DefaultStorageRoot = "./data/colllections"
)
