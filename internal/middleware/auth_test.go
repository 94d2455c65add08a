package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"riskdesk/internal/models"
	"riskdesk/internal/services/session"
	"riskdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(sessions session.Store) *fiber.App {
	app := fiber.New()
	m := NewAuthMiddleware(sessions, testSecret)
	app.Use(m.Handler)
	app.Get("/users", RequirePermission(models.PermissionViewUsers), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateSessionToken(testSecret, "session-1", &models.Identity{
		UserID:      "u-1",
		Email:       "someone@example.com",
		Role:        role,
		Permissions: models.DefaultPermissions(role),
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	app := newTestApp(session.NewMemoryStore())

	t.Run("missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/users", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown role in token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.Role("manager")))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("permission denied for viewer", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleViewer))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("superAdmin passes any permission gate", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleSuperAdmin))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("role gate has no superAdmin override", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleSuperAdmin))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestAuthMiddleware_TrustOnReload(t *testing.T) {
	// The session store is empty (as after a restart with the memory store),
	// but a valid token still authenticates from its embedded identity.
	app := newTestApp(session.NewMemoryStore())

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleRiskAnalyst))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_PrefersStoredSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	app := newTestApp(sessions)

	// The stored session has had viewUsers revoked relative to the token.
	require.NoError(t, sessions.Put(context.Background(), "session-1", &models.Identity{
		UserID:      "u-1",
		Email:       "someone@example.com",
		Role:        models.RoleRiskAnalyst,
		Permissions: []string{models.PermissionViewDashboard},
	}))

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleRiskAnalyst))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
