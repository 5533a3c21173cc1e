package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/dbx"
	"github.com/avasiljevs/itemvault/internal/server/authz"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/avasiljevs/itemvault/internal/server/repositories/repomanager"
)

// ItemService implements item CRUD gated by the ownership policy.
// Existence is always checked before ownership so a caller probing a
// missing id never learns whether it would have been forbidden.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewItemService constructs an ItemService using the shared repositories.
func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

// UpdateItemInput carries the replacement fields for an item update.
// OwnerID is optional; when set and different from the current owner it
// requests an ownership transfer.
type UpdateItemInput struct {
	Title       string
	Description *string
	OwnerID     string
}

// List returns the actor's items, or every item for a superuser.
func (s *ItemService) List(ctx context.Context, actor *models.User) ([]*models.Item, error) {
	repo := s.repomanager.Items(s.db)
	if authz.CanListAllItems(actor) {
		return repo.ListAll(ctx)
	}
	return repo.ListByOwner(ctx, actor.ID)
}

// Get returns a single item to its owner.
func (s *ItemService) Get(ctx context.Context, actor *models.User, id string) (*models.Item, error) {
	item, err := s.repomanager.Items(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanReadItem(actor, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Create persists a new item owned by the actor. Whatever owner a client
// may have supplied upstream is irrelevant here; ownership is forced.
func (s *ItemService) Create(ctx context.Context, actor *models.User, title string, description *string) (*models.Item, error) {
	if err := authz.CanCreateItem(actor); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}

	item := &models.Item{Title: title, Description: description, OwnerID: actor.ID}
	created, err := s.repomanager.Items(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return created, nil
}

// Update replaces title/description of an item the actor owns. An ownership
// transfer is honored only towards the actor itself and only when the new
// owner resolves to an existing user.
func (s *ItemService) Update(ctx context.Context, actor *models.User, id string, in UpdateItemInput) (*models.Item, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}

	var updated *models.Item
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)

		item, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := authz.CanModifyItem(actor, item); err != nil {
			return err
		}

		if in.OwnerID != "" && in.OwnerID != item.OwnerID {
			if err := authz.CanTransferItem(actor, in.OwnerID); err != nil {
				return err
			}
			if _, err := s.repomanager.Users(tx).GetByID(ctx, in.OwnerID); err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return fmt.Errorf("%w: new owner does not exist", common.ErrorValidation)
				}
				return err
			}
			item.OwnerID = in.OwnerID
		}

		item.Title = in.Title
		item.Description = in.Description

		if err := repo.Update(ctx, item); err != nil {
			return fmt.Errorf("error updating item: %w", err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an item the actor owns.
func (s *ItemService) Delete(ctx context.Context, actor *models.User, id string) error {
	repo := s.repomanager.Items(s.db)

	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.CanModifyItem(actor, item); err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	return nil
}
