package tokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avasiljevs/itemvault/internal/common"
	"github.com/avasiljevs/itemvault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("t-1", time.Now())
	mock.ExpectQuery(`INSERT\s+INTO\s+user_tokens\s*\(value,\s*user_id\)`).
		WithArgs("random-value", "u-1").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.Token{Value: "random-value", UserID: "u-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "t-1" {
		t.Fatalf("unexpected token: %+v", got)
	}
}

func TestCreate_ValueCollision(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+user_tokens`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "user_tokens_value_key"})

	_, err := repo.Create(context.Background(), &models.Token{Value: "dup", UserID: "u-1"})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestFindByValue_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "value", "user_id", "created_at"}).
		AddRow("t-1", "random-value", "u-1", time.Now())
	mock.ExpectQuery(`SELECT .* FROM user_tokens\s+WHERE value = \$1`).
		WithArgs("random-value").
		WillReturnRows(rows)

	got, err := repo.FindByValue(context.Background(), "random-value")
	if err != nil {
		t.Fatalf("FindByValue error: %v", err)
	}
	if got.UserID != "u-1" {
		t.Fatalf("unexpected token: %+v", got)
	}
}

func TestFindByValue_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM user_tokens\s+WHERE value = \$1`).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByValue(context.Background(), "unknown")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM user_tokens\s+WHERE user_id = \$1`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteByUser(context.Background(), "u-1"); err != nil {
		t.Fatalf("DeleteByUser error: %v", err)
	}
}
