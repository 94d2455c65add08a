package session

import (
	"context"
	"testing"

	"riskdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	identity := &models.Identity{
		UserID:      "u-1",
		Email:       "risk@example.com",
		Role:        models.RoleRiskAnalyst,
		Permissions: models.DefaultPermissions(models.RoleRiskAnalyst),
	}

	// A miss is a normal condition, not an error.
	got, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)

	require.NoError(t, store.Put(ctx, "s-1", identity))

	got, found, err = store.Get(ctx, "s-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, identity, got)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, found, err = store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing session succeeds.
	assert.NoError(t, store.Delete(ctx, "s-1"))
}
