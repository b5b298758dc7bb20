package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE todo").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, "UPDATE todo SET text='x'")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("fn failed")
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("want fn error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("begin failed"))

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})
	if err == nil {
		t.Fatal("expected begin error")
	}
}

func TestWithTx_RollsBackAndRethrowsPanic(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if p := recover(); p == nil {
			t.Fatal("panic must be rethrown")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		panic("boom")
	})
}
