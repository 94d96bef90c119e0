// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mazraa/internal/domain/entity"
	"mazraa/internal/i18n"

	"github.com/google/uuid"
)

// Actor identifies the identity driving a request, as recovered from the
// session token. Guests carry uuid.Nil and the guest role.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

// IsGuest reports whether the actor is a guest session.
func (a Actor) IsGuest() bool {
	return a.Role == entity.RoleGuest
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Role     entity.Role
	Phone    string
}

// LoginInput defines the data required to log in. The sentinel username
// "guest" establishes a guest session unconditionally.
type LoginInput struct {
	Username string
	Password string
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	Name  string
	Phone string
}

// UpdatePasswordInput defines a password change request.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// SessionOutput returns the identity and tokens after login/registration.
type SessionOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// MessageOutput carries a localized user-facing success message.
type MessageOutput struct {
	Message string
}

// AccountUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// Register creates a new directory entry and logs the caller in. The
	// directory is left unchanged when the username is taken.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// Login authenticates against the directory, or establishes a guest
	// session for the sentinel username. The returned identity never
	// carries credentials.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// GetProfile returns the caller's identity.
	GetProfile(ctx context.Context, actor Actor) (*entity.User, error)

	// UpdateProfile updates name and phone. Rejected for guests.
	UpdateProfile(ctx context.Context, actor Actor, input *UpdateProfileInput, loc i18n.Locale) (*MessageOutput, error)

	// UpdatePassword changes the stored password after verifying the
	// current one; the stored hash is untouched on mismatch.
	UpdatePassword(ctx context.Context, actor Actor, input *UpdatePasswordInput, loc i18n.Locale) (*MessageOutput, error)

	// DeleteAccount removes the caller's directory entry. Irreversible;
	// confirmation is a presentation concern.
	DeleteAccount(ctx context.Context, actor Actor, loc i18n.Locale) (*MessageOutput, error)
}
