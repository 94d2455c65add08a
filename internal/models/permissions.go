package models

// Permission tags gate individual dashboard surfaces and actions.
const (
	PermissionViewDashboard    = "viewDashboard"
	PermissionViewUsers        = "viewUsers"
	PermissionViewRiskMetrics  = "viewRiskMetrics"
	PermissionViewTransactions = "viewTransactions"
	PermissionViewTickets      = "viewTickets"
	PermissionManageTickets    = "manageTickets"
	PermissionManageUsers      = "manageUsers"
	PermissionManageSystem     = "manageSystem"
)

// DefaultPermissions returns the permission set granted to a role at login.
// superAdmin carries the full list for display purposes, but permission
// checks short-circuit on the role itself (see Identity.HasPermission).
func DefaultPermissions(role Role) []string {
	switch role {
	case RoleSuperAdmin:
		return []string{
			PermissionViewDashboard,
			PermissionViewUsers,
			PermissionViewRiskMetrics,
			PermissionViewTransactions,
			PermissionViewTickets,
			PermissionManageTickets,
			PermissionManageUsers,
			PermissionManageSystem,
		}
	case RoleAdmin:
		return []string{
			PermissionViewDashboard,
			PermissionViewUsers,
			PermissionViewRiskMetrics,
			PermissionViewTransactions,
			PermissionViewTickets,
			PermissionManageTickets,
			PermissionManageUsers,
		}
	case RoleRiskAnalyst:
		return []string{
			PermissionViewDashboard,
			PermissionViewUsers,
			PermissionViewRiskMetrics,
			PermissionViewTransactions,
		}
	case RoleKYCAgent:
		return []string{
			PermissionViewDashboard,
			PermissionViewUsers,
			PermissionViewTickets,
			PermissionManageTickets,
		}
	case RoleViewer:
		return []string{
			PermissionViewDashboard,
		}
	default:
		return []string{}
	}
}
