package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_HasPermission(t *testing.T) {
	tests := []struct {
		name       string
		identity   *Identity
		permission string
		want       bool
	}{
		{
			name:       "nil identity",
			identity:   nil,
			permission: PermissionViewUsers,
			want:       false,
		},
		{
			name: "superAdmin passes listed permission",
			identity: &Identity{
				Role:        RoleSuperAdmin,
				Permissions: DefaultPermissions(RoleSuperAdmin),
			},
			permission: PermissionManageSystem,
			want:       true,
		},
		{
			name: "superAdmin passes permission not in its set",
			identity: &Identity{
				Role:        RoleSuperAdmin,
				Permissions: DefaultPermissions(RoleSuperAdmin),
			},
			permission: "nonexistentPermission",
			want:       true,
		},
		{
			name: "explicit membership",
			identity: &Identity{
				Role:        RoleRiskAnalyst,
				Permissions: DefaultPermissions(RoleRiskAnalyst),
			},
			permission: PermissionViewRiskMetrics,
			want:       true,
		},
		{
			name: "missing permission",
			identity: &Identity{
				Role:        RoleViewer,
				Permissions: DefaultPermissions(RoleViewer),
			},
			permission: PermissionManageUsers,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.HasPermission(tt.permission))
		})
	}
}

func TestIdentity_HasAnyPermission(t *testing.T) {
	analyst := &Identity{
		Role:        RoleRiskAnalyst,
		Permissions: DefaultPermissions(RoleRiskAnalyst),
	}

	// OR semantics: true iff at least one permission is held.
	assert.True(t, analyst.HasAnyPermission(PermissionManageSystem, PermissionViewUsers))
	assert.True(t, analyst.HasAnyPermission(PermissionViewUsers, PermissionManageSystem))
	assert.False(t, analyst.HasAnyPermission(PermissionManageSystem, PermissionManageTickets))
	assert.False(t, analyst.HasAnyPermission())

	super := &Identity{Role: RoleSuperAdmin}
	assert.True(t, super.HasAnyPermission("anything", "at", "all"))

	var nilIdentity *Identity
	assert.False(t, nilIdentity.HasAnyPermission(PermissionViewUsers))
}

func TestIdentity_HasRole(t *testing.T) {
	admin := &Identity{Role: RoleAdmin}

	assert.True(t, admin.HasRole(RoleAdmin))
	assert.False(t, admin.HasRole(RoleSuperAdmin))
	assert.True(t, admin.HasAnyRole(RoleViewer, RoleAdmin))
	assert.False(t, admin.HasAnyRole(RoleViewer, RoleKYCAgent))

	// No superAdmin override for role checks.
	super := &Identity{Role: RoleSuperAdmin}
	assert.False(t, super.HasRole(RoleAdmin))

	var nilIdentity *Identity
	assert.False(t, nilIdentity.HasRole(RoleAdmin))
	assert.False(t, nilIdentity.HasAnyRole(RoleAdmin, RoleViewer))
}

func TestDefaultPermissions(t *testing.T) {
	for _, role := range AllRoles {
		assert.NotEmpty(t, DefaultPermissions(role), "role %s should have permissions", role)
	}
	assert.Empty(t, DefaultPermissions(Role("unknown")))

	// Only superAdmin may manage the system.
	for _, role := range AllRoles {
		identity := &Identity{Role: role, Permissions: DefaultPermissions(role)}
		assert.Equal(t, role == RoleSuperAdmin, identity.HasPermission(PermissionManageSystem), "role %s", role)
	}
}

func TestRole_Valid(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, role.Valid())
	}
	assert.False(t, Role("manager").Valid())
	assert.False(t, Role("").Valid())
}
