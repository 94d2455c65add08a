package models

// Identity is the authenticated principal: who is logged in, what role they
// hold, and the explicit permission tags that role was granted at login.
// It is serialized as-is into the session store and embedded in JWT claims.
type Identity struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the identity may perform the named action.
// A nil identity never may; a superAdmin always may, even for tags missing
// from its explicit set.
func (i *Identity) HasPermission(permission string) bool {
	if i == nil {
		return false
	}
	if i.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range i.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the identity holds at least one of the
// given permissions (logical OR).
func (i *Identity) HasAnyPermission(permissions ...string) bool {
	if i == nil {
		return false
	}
	if i.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range permissions {
		if i.HasPermission(p) {
			return true
		}
	}
	return false
}

// HasRole reports whether the identity holds exactly the given role.
// Unlike permission checks there is no superAdmin override: role gates are
// for role-specific surfaces, not privilege escalation.
func (i *Identity) HasRole(role Role) bool {
	return i != nil && i.Role == role
}

// HasAnyRole reports whether the identity's role is one of the given roles.
func (i *Identity) HasAnyRole(roles ...Role) bool {
	if i == nil {
		return false
	}
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
