package items

import (
	"context"

	"github.com/avasiljevs/itemvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	ListAll(ctx context.Context) ([]*models.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id string) error
}
