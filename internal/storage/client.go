// Package storage persists colllection files and their tag definitions.
//
// The Store interface is the seam where a remote provider (Dropbox, S3)
// would plug in; the local filesystem implementation in local.go is the
// only provider shipped.
package storage

import (
	"errors"
	"io"
	"time"
)

var (
	ErrColllectionNotFound = errors.New("colllection not found")
	ErrColllectionExists   = errors.New("colllection already exists")
	ErrElementNotFound     = errors.New("element not found")
	ErrInvalidName         = errors.New("invalid name")
)

// FileInfo contains metadata about a stored colllection element.
type FileInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Tag is a label defined inside a colllection.
type Tag struct {
	Name string `json:"name"`
}

// Store defines the persistence boundary for colllections. All paths are
// scoped per user; a user can never reach another user's colllections.
type Store interface {
	// ListColllections returns the names of the user's colllections.
	ListColllections(userEmail string) ([]string, error)

	// CreateColllection creates an empty colllection.
	CreateColllection(userEmail, colllection string) error

	// ListElements returns metadata for the files in a colllection.
	ListElements(userEmail, colllection string) ([]FileInfo, error)

	// SaveElement writes an element's content.
	SaveElement(userEmail, colllection, name string, content io.Reader) error

	// OpenElement retrieves an element's content.
	OpenElement(userEmail, colllection, name string) (io.ReadCloser, error)

	// DeleteElement removes an element.
	DeleteElement(userEmail, colllection, name string) error

	// ListTags returns the tags defined in a colllection.
	ListTags(userEmail, colllection string) ([]Tag, error)

	// SaveTags replaces the tags defined in a colllection.
	SaveTags(userEmail, colllection string, tags []Tag) error
}
