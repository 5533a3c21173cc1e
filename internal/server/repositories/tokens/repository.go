package tokens

import (
	"context"

	"github.com/avasiljevs/itemvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.Token) (*models.Token, error)
	FindByValue(ctx context.Context, value string) (*models.Token, error)
	DeleteByUser(ctx context.Context, userID string) error
}
