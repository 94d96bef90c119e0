// Package repository defines the persistence contracts the use cases depend
// on. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors returned by repositories so use cases can branch on
// not-found without knowing the storage engine.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameAlreadyTaken = errors.New("username already taken")
	ErrProductNotFound      = errors.New("product not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// UserRepository is the user directory: every registered account keyed by a
// unique username. Guests are never stored here.
type UserRepository interface {
	// FindByID retrieves a single entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DirectoryEntry, error)

	// FindByUsername retrieves a single entry by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.DirectoryEntry, error)

	// Create persists a new directory entry. Returns
	// ErrUsernameAlreadyTaken when the username is in use.
	Create(ctx context.Context, entry *entity.DirectoryEntry) error

	// Update overwrites the mutable fields (name, phone, password hash) of
	// an existing entry.
	Update(ctx context.Context, entry *entity.DirectoryEntry) error

	// Delete removes the entry with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
