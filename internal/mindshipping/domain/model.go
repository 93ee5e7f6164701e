package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmailTaken is returned when a signup collides with an existing account.
var ErrEmailTaken = errors.New("email already registered")

// ErrStoreUnavailable marks operations attempted without a configured
// database. Surfaced as a configuration error at the HTTP boundary.
var ErrStoreUnavailable = errors.New("user store is not configured")

type User struct {
	UID           uuid.UUID
	FullName      string
	Email         string
	Username      string
	PasswordHash  string
	IsActive      bool
	IsVerified    bool
	ProfilePicURL *string
	Bio           string
	CreatedAt     time.Time
}
