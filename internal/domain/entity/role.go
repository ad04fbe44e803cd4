// Package entity contains the core business objects of the marketplace.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer browses listings, saves searches and messages sellers.
	RoleBuyer Role = "BUYER"
	// RoleSeller submits listings with supporting evidence.
	RoleSeller Role = "SELLER"
	// RoleAdmin reviews listings and moderates the marketplace.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether a user may pick this role when creating their own profile.
func (r Role) IsSelfAssignable() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
