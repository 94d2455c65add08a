package models

// Role identifies the operator's position on the desk. Checks switch on the
// concrete type rather than raw strings so an unhandled role is caught when
// a new one is added.
type Role string

const (
	RoleSuperAdmin  Role = "superAdmin"
	RoleAdmin       Role = "admin"
	RoleRiskAnalyst Role = "riskAnalyst"
	RoleKYCAgent    Role = "kycAgent"
	RoleViewer      Role = "viewer"
)

// AllRoles lists every known role, in privilege order.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleRiskAnalyst, RoleKYCAgent, RoleViewer}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleRiskAnalyst, RoleKYCAgent, RoleViewer:
		return true
	}
	return false
}
