// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an identity can have in the system.
type Role string

const (
	// RoleGuest indicates an unauthenticated browsing identity with restricted screen access.
	RoleGuest Role = "guest"
	// RoleFarmer indicates a farmer, the only role that may place orders and save diagnoses.
	RoleFarmer Role = "farmer"
	// RoleMerchant indicates a merchant, the only role that may manage products.
	RoleMerchant Role = "merchant"
)

// GuestUsername is the sentinel login name that establishes a guest session
// unconditionally, without a directory lookup.
const GuestUsername = "guest"

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleFarmer, RoleMerchant:
		return true
	default:
		return false
	}
}

// Registrable reports whether the role may be chosen at registration time.
// Guest is a session state, not a registrable account type.
func (r Role) Registrable() bool {
	return r == RoleFarmer || r == RoleMerchant
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
