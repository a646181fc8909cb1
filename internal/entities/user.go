package entities

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password exceeds maximum length of 72 bytes")
)

// User is an account that can authenticate and own colllections.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255" json:"email"`
	Nickname     string         `gorm:"size:100" json:"nickname"`
	PasswordHash string         `gorm:"size:100" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// PlainPassword is never persisted. When set, BeforeSave hashes it
	// into PasswordHash and clears it.
	PlainPassword string `gorm:"-" json:"-"`
}

// BcryptCost is the cost used when hashing passwords on save.
// Overridden at startup from config.
var BcryptCost = bcrypt.DefaultCost

// BeforeSave hashes PlainPassword into PasswordHash if one was provided.
// Entities saved without a plain password keep their existing hash.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.PlainPassword == "" {
		return nil
	}
	if len(u.PlainPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	// bcrypt has a 72-byte limit
	if len(u.PlainPassword) > 72 {
		return ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.PlainPassword), BcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.PlainPassword = ""
	return nil
}
