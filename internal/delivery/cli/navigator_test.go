package cli

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/storage"
	"storefront/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestNavigator_ReplaceMovesGroup(t *testing.T) {
	nav := NewNavigator()
	nav.Enter(entity.GroupClient)

	_, moved := nav.Redirect()
	assert.False(t, moved)

	nav.Replace(entity.RouteLogin)

	route, moved := nav.Redirect()
	assert.True(t, moved)
	assert.Equal(t, entity.RouteLogin, route)
	assert.Equal(t, entity.GroupAuth, nav.CurrentGroup())

	nav.Enter(entity.GroupClient)
	_, moved = nav.Redirect()
	assert.False(t, moved)
}

func TestGroupOf(t *testing.T) {
	assert.Equal(t, entity.GroupAuth, groupOf(entity.RouteLogin))
	assert.Equal(t, entity.GroupClient, groupOf(entity.RouteClientHome))
	assert.Equal(t, entity.GroupShopper, groupOf(entity.RouteShopperDashboard))
}

func TestNavigator_DrivenByGate(t *testing.T) {
	store := session.NewStore(storage.NewMemoryStorage(), discardLogger())
	nav := NewNavigator()
	gate := session.NewGate(store, nav, discardLogger())

	nav.Enter(entity.GroupClient)
	gate.Evaluate()
	_, moved := nav.Redirect()
	assert.False(t, moved, "no decision before hydration")

	store.LoadSession(t.Context())
	gate.Evaluate()
	route, moved := nav.Redirect()
	assert.True(t, moved)
	assert.Equal(t, entity.RouteLogin, route)
}
