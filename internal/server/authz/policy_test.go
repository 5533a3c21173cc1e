package authz

import (
	"errors"
	"testing"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/stretchr/testify/require"
)

var (
	alice = &models.User{ID: "u-alice", IsActive: true}
	bob   = &models.User{ID: "u-bob", IsActive: true}
	admin = &models.User{ID: "u-admin", IsActive: true, IsSuperuser: true}
	idle  = &models.User{ID: "u-idle", IsActive: false}
)

func requireForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrorForbidden), "want ErrorForbidden, got %v", err)
}

func TestIsOwner(t *testing.T) {
	require.True(t, IsOwner("a", "a"))
	require.False(t, IsOwner("a", "b"))
	require.False(t, IsOwner("", ""), "empty ids must never match")
}

func TestCanCreateItem(t *testing.T) {
	require.NoError(t, CanCreateItem(alice))
	requireForbidden(t, CanCreateItem(idle))
	// superusers still need to be active for item creation
	require.NoError(t, CanCreateItem(admin))
}

func TestItemOwnership(t *testing.T) {
	item := &models.Item{ID: "i-1", OwnerID: alice.ID}

	require.NoError(t, CanReadItem(alice, item))
	require.NoError(t, CanModifyItem(alice, item))

	requireForbidden(t, CanReadItem(bob, item))
	requireForbidden(t, CanModifyItem(bob, item))

	// no superuser override on items
	requireForbidden(t, CanReadItem(admin, item))
	requireForbidden(t, CanModifyItem(admin, item))
}

func TestCanListAllItems(t *testing.T) {
	require.False(t, CanListAllItems(alice))
	require.True(t, CanListAllItems(admin))
}

func TestCanTransferItem(t *testing.T) {
	require.NoError(t, CanTransferItem(alice, alice.ID))
	requireForbidden(t, CanTransferItem(alice, bob.ID))
}

func TestUserReadUpdate(t *testing.T) {
	require.NoError(t, CanReadUser(alice, alice.ID))
	require.NoError(t, CanUpdateUser(alice, alice.ID))
	require.NoError(t, CanReadUser(admin, alice.ID))
	require.NoError(t, CanUpdateUser(admin, alice.ID))

	requireForbidden(t, CanReadUser(alice, bob.ID))
	requireForbidden(t, CanUpdateUser(alice, bob.ID))
}

func TestCanDeleteUser(t *testing.T) {
	require.NoError(t, CanDeleteUser(admin, alice.ID))
	requireForbidden(t, CanDeleteUser(alice, bob.ID))

	// self-delete through the admin path is denied even for superusers
	requireForbidden(t, CanDeleteUser(admin, admin.ID))
	requireForbidden(t, CanDeleteUser(alice, alice.ID))
}

func TestCanCreateUser(t *testing.T) {
	require.NoError(t, CanCreateUser(admin))
	requireForbidden(t, CanCreateUser(alice))
}
