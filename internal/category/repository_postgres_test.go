package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "type"}).
		AddRow(1, "Science").
		AddRow(2, "Art")
	mock.ExpectQuery("SELECT id, type FROM categories ORDER BY id").WillReturnRows(rows)

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 2 || items[1].Type != "Art" {
		t.Fatalf("unexpected categories %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM categories").WillReturnError(errors.New("no such table"))

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected error to surface")
	}
}

func TestPostgresSeed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO categories").WithArgs("Science").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO categories").WithArgs("Art").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	n, err := repo.Seed(context.Background(), []string{"Science", "Art"})
	if err != nil || n != 2 {
		t.Fatalf("expected 2 seeded, got %d (%v)", n, err)
	}

	// populated table is left alone
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
	n, err = repo.Seed(context.Background(), []string{"Science"})
	if err != nil || n != 0 {
		t.Fatalf("expected no seeding, got %d (%v)", n, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSeed_WrapsTransactionErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	beginErr := errors.New("too many connections")
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin().WillReturnError(beginErr)
	_, err = repo.Seed(context.Background(), []string{"Science"})
	if !errors.Is(err, beginErr) || !strings.Contains(err.Error(), "begin seed categories") {
		t.Fatalf("expected wrapped begin error, got %v", err)
	}

	commitErr := errors.New("serialization failure")
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO categories").WithArgs("Science").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(commitErr)
	_, err = repo.Seed(context.Background(), []string{"Science"})
	if !errors.Is(err, commitErr) || !strings.Contains(err.Error(), "commit seed categories") {
		t.Fatalf("expected wrapped commit error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
