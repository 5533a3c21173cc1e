package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/avasiljevs/itemvault/internal/server/auth"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/avasiljevs/itemvault/internal/server/repositories/inmemory"
)

// newSQLMockDB returns a DB handle for services under test; transactional
// paths add Begin/Commit expectations as needed.
func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func mustCreateUser(t *testing.T, rm *inmemory.Manager, u *models.User) *models.User {
	t.Helper()
	created, err := rm.Users(nil).Create(context.Background(), u)
	require.NoError(t, err)
	return created
}

func seedUser(t *testing.T, rm *inmemory.Manager, email, password string, active, super bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return mustCreateUser(t, rm, &models.User{
		FullName:       "Test User",
		Email:          email,
		IsActive:       active,
		IsSuperuser:    super,
		HashedPassword: hash,
	})
}

func seedItem(t *testing.T, rm *inmemory.Manager, title, ownerID string) *models.Item {
	t.Helper()
	item, err := rm.Items(nil).Create(context.Background(), &models.Item{Title: title, OwnerID: ownerID})
	require.NoError(t, err)
	return item
}

func allUsers(t *testing.T, rm *inmemory.Manager) []*models.User {
	t.Helper()
	users, err := rm.Users(nil).List(context.Background())
	require.NoError(t, err)
	return users
}

func allItems(t *testing.T, rm *inmemory.Manager) []*models.Item {
	t.Helper()
	items, err := rm.Items(nil).ListAll(context.Background())
	require.NoError(t, err)
	return items
}
