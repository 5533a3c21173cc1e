// Package repomanager wires concrete repositories and goose migrations for
// the PostgreSQL backend.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avasiljevs/itemvault/internal/dbx"
	"github.com/avasiljevs/itemvault/internal/server/migrations"
	"github.com/avasiljevs/itemvault/internal/server/repositories/items"
	"github.com/avasiljevs/itemvault/internal/server/repositories/tokens"
	"github.com/avasiljevs/itemvault/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Items(db dbx.DBTX) items.Repository {
	return items.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	return tokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
