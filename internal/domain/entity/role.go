// Package entity contains the core business objects of the storefront.
package entity

import "slices"

// Role is the authorization level carried by an identity.
type Role string

const (
	// RoleUser is a shopper.
	RoleUser Role = "user"
	// RoleAdmin manages everything, including staff roles.
	RoleAdmin Role = "admin"
	// RoleManager runs the catalog, orders and reference data.
	RoleManager Role = "manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleManager:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may act on other identities' data.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager
}

// Roles is an allow-list of roles.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
