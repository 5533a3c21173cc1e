// Package tokens provides a PostgreSQL-backed repository for the opaque
// bearer tokens issued at login.
package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/dbx"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/avasiljevs/itemvault/internal/server/repositories/pgerr"
)

// PostgresRepository implements token storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new token row. A value collision (vanishingly unlikely
// with 32 random bytes) yields common.ErrorConflict.
func (r *PostgresRepository) Create(ctx context.Context, token *models.Token) (*models.Token, error) {
	query := `
		INSERT INTO user_tokens (value, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, token.Value, token.UserID).
		Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

// FindByValue returns the token row with the exact value, or
// common.ErrorNotFound. There is no expiry check; tokens are permanent.
func (r *PostgresRepository) FindByValue(ctx context.Context, value string) (*models.Token, error) {
	query := `
		SELECT id, value, user_id, created_at
		FROM user_tokens
		WHERE value = $1
	`
	token := &models.Token{}
	err := r.db.QueryRowContext(ctx, query, value).
		Scan(&token.ID, &token.Value, &token.UserID, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

// DeleteByUser removes all tokens issued to a user. Deleting a user already
// cascades; this exists for explicit revocation flows.
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	query := `
		DELETE FROM user_tokens
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
