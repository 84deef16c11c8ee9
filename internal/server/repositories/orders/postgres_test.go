package orders

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/ordertrack/internal/common"
	"github.com/dmitrijs2005/ordertrack/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	createQ = `(?s)^INSERT\s+INTO\s+orders\s*\(user_id,\s*product_name,\s*quantity,\s*price\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`
	listQ   = `(?s)^SELECT\s+.*FROM\s+orders\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s*$`
	updateQ = `(?s)^UPDATE\s+orders\s+SET\s+.*WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s+RETURNING\s+.*$`
	deleteQ = `(?s)^DELETE\s+FROM\s+orders\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("o-1", now, now)
	mock.ExpectQuery(createQ).
		WithArgs("u-1", "Widget", int32(3), 9.99).
		WillReturnRows(rows)

	o := &models.Order{UserID: "u-1", ProductName: "Widget", Quantity: 3, Price: 9.99}
	got, err := repo.Create(context.Background(), o)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "o-1" || got.UserID != "u-1" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "product_name", "quantity", "price", "created_at", "updated_at"}).
		AddRow("o-2", "u-1", "Gadget", int32(1), 19.99, now, now).
		AddRow("o-1", "u-1", "Widget", int32(3), 9.99, now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(listQ).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "o-2" || got[1].ID != "o-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "product_name", "quantity", "price", "created_at", "updated_at"})
	mock.ExpectQuery(listQ).WithArgs("u-2").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-2")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	name := "Sprocket"
	rows := sqlmock.NewRows([]string{"id", "user_id", "product_name", "quantity", "price", "created_at", "updated_at"}).
		AddRow("o-1", "u-1", "Sprocket", int32(3), 9.99, now.Add(-time.Hour), now)
	mock.ExpectQuery(updateQ).
		WithArgs("o-1", "u-1", &name, (*int32)(nil), (*float64)(nil)).
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(), "o-1", "u-1", &models.OrderPatch{ProductName: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.ProductName != "Sprocket" || got.Quantity != 3 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestUpdate_Miss(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(updateQ).
		WithArgs("o-404", "u-1", (*string)(nil), (*int32)(nil), (*float64)(nil)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "o-404", "u-1", &models.OrderPatch{})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("o-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "o-1", "u-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_Miss(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("o-1", "u-other").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "o-1", "u-other")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
