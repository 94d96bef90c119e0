package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity exposed to the rest of the system once a session is
// established. It never carries credentials; the password hash lives only on
// the DirectoryEntry and is stripped before a User leaves the account layer.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name      string    // The user's display name.
	Username  string    // The unique login identifier.
	Role      Role      // The user's role (guest, farmer or merchant).
	Phone     string    // Optional contact phone number.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// IsGuest reports whether this identity is the restricted guest session.
func (u *User) IsGuest() bool {
	return u.Role == RoleGuest
}

// DirectoryEntry is a registered account as stored in the user directory,
// keyed by username. It is the only place the password hash is held.
type DirectoryEntry struct {
	User
	PasswordHash string // bcrypt hash of the account password.
}

// Identity returns the credential-free view of this entry.
func (e *DirectoryEntry) Identity() *User {
	u := e.User

	return &u
}

// GuestUser builds the synthetic guest identity. Guests are not directory
// entries; the same fixed identity is handed out to every guest session.
func GuestUser() *User {
	return &User{
		ID:       uuid.Nil,
		Name:     "ضيف",
		Username: GuestUsername,
		Role:     RoleGuest,
	}
}
