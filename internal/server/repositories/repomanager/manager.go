package repomanager

import (
	"context"
	"database/sql"

	"github.com/avasiljevs/itemvault/internal/dbx"
	"github.com/avasiljevs/itemvault/internal/server/repositories/items"
	"github.com/avasiljevs/itemvault/internal/server/repositories/tokens"
	"github.com/avasiljevs/itemvault/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DB handle (pool or
// transaction) and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
	Tokens(db dbx.DBTX) tokens.Repository
}
