package entries

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

const (
	insertEntryQuery = `(?s)INSERT\s+INTO\s+entries\s*\(user_id,\s*title,\s*password\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at`
	selectEntryQuery = `(?s)SELECT\s+id,\s*user_id,\s*title,\s*password,\s*created_at\s+FROM\s+entries\s+WHERE\s+user_id=\$1\s+ORDER\s+BY\s+seq`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertEntryQuery).
		WithArgs("u1", "gmail", "p@ss").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("e1", created))

	got, err := repo.Create(context.Background(), &models.Entry{OwnerID: "u1", Title: "gmail", Secret: "p@ss"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "e1" || !got.CreatedAt.Equal(created) || got.OwnerID != "u1" {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertEntryQuery).
		WithArgs("u1", "t", "s").
		WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), &models.Entry{OwnerID: "u1", Title: "t", Secret: "s"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPostgresCreate_EmptyOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.Create(context.Background(), &models.Entry{Title: "t"})
	if !errors.Is(err, ErrEmptyOwner) {
		t.Fatalf("want ErrEmptyOwner, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query expected: %v", err)
	}
}

func TestPostgresListByOwner_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "password", "created_at"}).
		AddRow("e1", "u1", "gmail", "p1", now).
		AddRow("e2", "u1", "bank", "p2", now)
	mock.ExpectQuery(selectEntryQuery).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "e1" || got[1].Title != "bank" || got[1].Secret != "p2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestPostgresListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectEntryQuery).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "password", "created_at"}))

	got, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestPostgresListByOwner_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectEntryQuery).WithArgs("u1").WillReturnError(errors.New("down"))

	if _, err := repo.ListByOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPostgresListByOwner_RowsErr(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "password", "created_at"}).
		AddRow("e1", "u1", "t", "p", time.Now()).
		RowError(0, errors.New("row err"))
	mock.ExpectQuery(selectEntryQuery).WithArgs("u1").WillReturnRows(rows)

	if _, err := repo.ListByOwner(context.Background(), "u1"); err == nil {
		t.Fatal("expected rows error")
	}
}
