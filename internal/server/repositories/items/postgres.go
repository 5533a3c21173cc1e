// Package items provides a PostgreSQL-backed repository for item records.
package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/dbx"
	"github.com/avasiljevs/itemvault/internal/server/models"
)

// PostgresRepository implements item storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new item owned by item.OwnerID.
func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `
		INSERT INTO items (title, description, owner)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, item.Title, item.Description, item.OwnerID).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// GetByID returns the item with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query := `
		SELECT id, title, description, owner, created_at, updated_at
		FROM items
		WHERE id = $1
	`
	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.Title, &item.Description, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// ListAll returns every item; only superusers get an unscoped list.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Item, error) {
	query := `
		SELECT id, title, description, owner, created_at, updated_at
		FROM items
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collect(rows)
}

// ListByOwner returns the items owned by ownerID.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error) {
	query := `
		SELECT id, title, description, owner, created_at, updated_at
		FROM items
		WHERE owner = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collect(rows)
}

// Update rewrites title, description and owner of the item row.
// A missing row yields common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET title = $2, description = $3, owner = $4, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Description, item.OwnerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// Delete removes the item row, or returns common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM items
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func collect(rows *sql.Rows) ([]*models.Item, error) {
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.OwnerID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
