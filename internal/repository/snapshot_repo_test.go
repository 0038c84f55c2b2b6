package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockSnapshotRepo(t *testing.T) (*SnapshotSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewSnapshotSQLite(db), mock
}

func TestSnapshotSQLite_Save_UpsertsWholeBodyWithUTCTime(t *testing.T) {
	repo, mock := newMockSnapshotRepo(t)
	locTokyo := time.FixedZone("JST", 9*3600)
	fixed := time.Date(2025, 4, 1, 9, 0, 0, 0, locTokyo)
	repo.now = func() time.Time { return fixed }

	body := `{"version":1,"zone":"II"}`
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parking_snapshots")).
		WithArgs(5, body, fixed.UTC()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), 5, []byte(body)); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestSnapshotSQLite_Save_ErrorIsWrapped(t *testing.T) {
	repo, mock := newMockSnapshotRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parking_snapshots")).
		WithArgs(5, "{}", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), 5, []byte("{}"))
	if err == nil || !strings.Contains(err.Error(), "owner 5") || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSnapshotSQLite_Load(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockSnapshotRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(`{"zone":"I"}`))

		got, err := repo.Load(context.Background(), 3)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if string(got) != `{"zone":"I"}` {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := newMockSnapshotRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
			WithArgs(3).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.Load(context.Background(), 3)
		if err != nil || got != nil {
			t.Fatalf("expected (nil, nil), got (%q, %v)", got, err)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockSnapshotRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
			WithArgs(3).
			WillReturnError(errors.New("locked"))

		if _, err := repo.Load(context.Background(), 3); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSnapshotSQLite_Owners(t *testing.T) {
	repo, mock := newMockSnapshotRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotOwnersSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(1).AddRow(4))

	got, err := repo.Owners(context.Background())
	if err != nil {
		t.Fatalf("Owners: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("got %v", got)
	}
}
