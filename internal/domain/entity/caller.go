package entity

// Caller is the resolved identity behind a request.
// A nil *Caller means "no authenticated user".
type Caller struct {
	ID    string
	Email string
	Role  Role
}

// IsAdmin reports whether the caller holds the admin role. Safe on nil.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// Decision is the tagged outcome of an authorization check.
type Decision int

const (
	// Denied means the caller may not perform the action.
	Denied Decision = iota
	// Authorized means the caller may perform the action.
	Authorized
)

// Allowed reports whether the decision grants access.
func (d Decision) Allowed() bool {
	return d == Authorized
}

// RequireRole authorizes the caller when it holds any of the given roles.
func RequireRole(caller *Caller, roles ...Role) Decision {
	if caller == nil {
		return Denied
	}
	if Roles(roles).Contains(caller.Role) {
		return Authorized
	}

	return Denied
}

// CanManageListing authorizes the listing owner or an admin.
func CanManageListing(caller *Caller, listing *Listing) Decision {
	if caller == nil || listing == nil {
		return Denied
	}
	if caller.IsAdmin() || caller.ID == listing.OwnerID {
		return Authorized
	}

	return Denied
}

// CanViewListing authorizes anyone for approved listings and only the owner or an admin otherwise.
func CanViewListing(caller *Caller, listing *Listing) Decision {
	if listing == nil {
		return Denied
	}
	if listing.Status == ListingStatusApproved {
		return Authorized
	}

	return CanManageListing(caller, listing)
}
