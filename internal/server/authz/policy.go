// Package authz holds the authorization policy as pure decision functions.
// Every function takes the acting user explicitly and returns nil to allow
// or a common.ErrorForbidden-wrapped error with the deny reason. There is
// no ambient "current user" and no silent fallthrough.
package authz

import (
	"fmt"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/server/models"
)

// IsOwner is the single ownership comparison used by item policy.
// Identifiers are compared by value, never via reflective field access.
func IsOwner(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}

// CanCreateItem allows item creation for active users only.
func CanCreateItem(actor *models.User) error {
	if !actor.IsActive {
		return fmt.Errorf("%w: must be an active user to create items", common.ErrorForbidden)
	}
	return nil
}

// CanReadItem allows reading an item to its owner. Superusers get no
// override on items.
func CanReadItem(actor *models.User, item *models.Item) error {
	if !IsOwner(actor.ID, item.OwnerID) {
		return fmt.Errorf("%w: not the item owner", common.ErrorForbidden)
	}
	return nil
}

// CanModifyItem allows update/delete to the item owner only.
func CanModifyItem(actor *models.User, item *models.Item) error {
	if !IsOwner(actor.ID, item.OwnerID) {
		return fmt.Errorf("%w: not the item owner", common.ErrorForbidden)
	}
	return nil
}

// CanListAllItems reports whether the actor sees every item when listing.
// Everyone else receives an owner-scoped list.
func CanListAllItems(actor *models.User) bool {
	return actor.IsSuperuser
}

// CanTransferItem allows changing an item's owner on update. The only
// permitted target is the actor itself; anything else would let a client
// assign items to arbitrary users.
func CanTransferItem(actor *models.User, newOwnerID string) error {
	if newOwnerID != actor.ID {
		return fmt.Errorf("%w: items may only be assigned to yourself", common.ErrorForbidden)
	}
	return nil
}

// CanReadUser allows reading a user record to the user themselves or to a
// superuser.
func CanReadUser(actor *models.User, targetID string) error {
	if actor.ID == targetID || actor.IsSuperuser {
		return nil
	}
	return fmt.Errorf("%w: must be superuser to read other users", common.ErrorForbidden)
}

// CanUpdateUser allows updating a user record to the user themselves or to
// a superuser.
func CanUpdateUser(actor *models.User, targetID string) error {
	if actor.ID == targetID || actor.IsSuperuser {
		return nil
	}
	return fmt.Errorf("%w: must be superuser to update other users", common.ErrorForbidden)
}

// CanDeleteUser covers the administrative delete-by-id path. Deleting your
// own account through it is always denied; self-deletion goes through the
// "me" path. Everything else requires a superuser.
func CanDeleteUser(actor *models.User, targetID string) error {
	if actor.ID == targetID {
		return fmt.Errorf("%w: cannot delete your own account here, use the me endpoint", common.ErrorForbidden)
	}
	if !actor.IsSuperuser {
		return fmt.Errorf("%w: must be superuser to delete other users", common.ErrorForbidden)
	}
	return nil
}

// CanCreateUser covers the admin provisioning path (not public signup).
func CanCreateUser(actor *models.User) error {
	if !actor.IsSuperuser {
		return fmt.Errorf("%w: must be superuser to register others", common.ErrorForbidden)
	}
	return nil
}
