package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ session.MemoryStore }

func (*failingStore) Get(context.Context, entity.Role) (string, error) {
	return "", errors.New("redis unavailable")
}

func TestDecide_AbsentIdentifierRedirects(t *testing.T) {
	want := map[entity.Role]string{
		entity.RoleClient: "/login",
		entity.RoleVendor: "/vendor/login",
		entity.RoleAdmin:  "/admin/login",
	}

	for role, location := range want {
		t.Run(string(role), func(t *testing.T) {
			decision, err := Decide(context.Background(), session.NewMemoryStore(), role)
			require.NoError(t, err)
			assert.Equal(t, Redirecting, decision.State)
			assert.Equal(t, location, decision.Location)
			assert.Empty(t, decision.Identifier)
		})
	}
}

func TestDecide_PresentIdentifierAuthorizes(t *testing.T) {
	for _, role := range entity.Roles {
		t.Run(string(role), func(t *testing.T) {
			store := session.NewMemoryStore()
			require.NoError(t, store.Set(context.Background(), role, "forged-but-present"))

			decision, err := Decide(context.Background(), store, role)
			require.NoError(t, err)
			assert.Equal(t, Authorized, decision.State)
			assert.Equal(t, "forged-but-present", decision.Identifier)
			assert.Empty(t, decision.Location)
		})
	}
}

func TestDecide_OtherRoleDoesNotAuthorize(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), entity.RoleClient, "c-1"))

	decision, err := Decide(context.Background(), store, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, Redirecting, decision.State)
	assert.Equal(t, "/admin/login", decision.Location)
}

func TestDecide_StoreFailureRedirects(t *testing.T) {
	decision, err := Decide(context.Background(), &failingStore{}, entity.RoleVendor)
	assert.Error(t, err)
	assert.Equal(t, Redirecting, decision.State)
	assert.Equal(t, "/vendor/login", decision.Location)
}
