package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// tagsFileName holds a colllection's tag definitions. The leading dot
// keeps it out of element listings.
const tagsFileName = ".tags.json"

// LocalStore implements Store on the local filesystem.
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStore{root: dir}, nil
}

// userDir derives a filesystem-safe directory per user from the email.
func (s *LocalStore) userDir(userEmail string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(userEmail)))
	return filepath.Join(s.root, hex.EncodeToString(sum[:])[:16])
}

// validName rejects names that could escape the colllection directory.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	return true
}

func (s *LocalStore) colllectionDir(userEmail, colllection string) (string, error) {
	if !validName(colllection) {
		return "", ErrInvalidName
	}
	return filepath.Join(s.userDir(userEmail), colllection), nil
}

// ListColllections returns the names of the user's colllections.
func (s *LocalStore) ListColllections(userEmail string) ([]string, error) {
	entries, err := os.ReadDir(s.userDir(userEmail))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// CreateColllection creates an empty colllection directory.
func (s *LocalStore) CreateColllection(userEmail, colllection string) error {
	dir, err := s.colllectionDir(userEmail, colllection)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); err == nil {
		return ErrColllectionExists
	}
	return os.MkdirAll(dir, 0755)
}

// ListElements returns metadata for the files in a colllection.
func (s *LocalStore) ListElements(userEmail, colllection string) ([]FileInfo, error) {
	dir, err := s.colllectionDir(userEmail, colllection)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrColllectionNotFound
		}
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:       entry.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	return files, nil
}

// SaveElement writes an element's content into the colllection.
func (s *LocalStore) SaveElement(userEmail, colllection, name string, content io.Reader) error {
	dir, err := s.colllectionDir(userEmail, colllection)
	if err != nil {
		return err
	}
	if !validName(name) {
		return ErrInvalidName
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return ErrColllectionNotFound
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, content)
	return err
}

// OpenElement retrieves an element's content.
func (s *LocalStore) OpenElement(userEmail, colllection, name string) (io.ReadCloser, error) {
	dir, err := s.colllectionDir(userEmail, colllection)
	if err != nil {
		return nil, err
	}
	if !validName(name) {
		return nil, ErrInvalidName
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrElementNotFound
		}
		return nil, err
	}
	return f, nil
}

// DeleteElement removes an element from the colllection.
func (s *LocalStore) DeleteElement(userEmail, colllection, name string) error {
	dir, err := s.colllectionDir(userEmail, colllection)
	if err != nil {
		return err
	}
	if !validName(name) {
		return ErrInvalidName
	}
	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		if os.IsNotExist(err) {
			return ErrElementNotFound
		}
		return err
	}
	return nil
}

// ListTags returns the tags defined in a colllection.
func (s *LocalStore) ListTags(userEmail, colllection string) ([]Tag, error) {
	dir, err := s.colllectionDir(userEmail, colllection)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, ErrColllectionNotFound
	}

	data, err := os.ReadFile(filepath.Join(dir, tagsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return []Tag{}, nil
		}
		return nil, err
	}

	var tags []Tag
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags file: %w", err)
	}
	return tags, nil
}

// SaveTags replaces the tags defined in a colllection.
func (s *LocalStore) SaveTags(userEmail, colllection string, tags []Tag) error {
	dir, err := s.colllectionDir(userEmail, colllection)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return ErrColllectionNotFound
	}

	data, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, tagsFileName), data, 0644)
}

var _ Store = (*LocalStore)(nil)
