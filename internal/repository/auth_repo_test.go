package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewUserRepository(db), mock
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name        string
		expect      func(sqlmock.Sqlmock)
		wantID      int
		errContains string
	}{
		{
			name: "success",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("driver", "hash").
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "duplicate username",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("driver", "hash").
					WillReturnError(errors.New("UNIQUE constraint failed: users.username"))
			},
			errContains: "insert user",
		},
		{
			name: "last insert id error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("driver", "hash").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			errContains: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockUserRepo(t)
			tt.expect(mock)

			id, err := repo.Create("driver", "hash")
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error containing %q, got %v", tt.errContains, err)
				}
				if id != 0 {
					t.Fatalf("expected id=0 on error, got %d", id)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
			WithArgs("driver").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(7, "driver", "h"))

		u, err := repo.GetByUsername("driver")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u == nil || u.ID != 7 || u.Username != "driver" || u.PasswordHash != "h" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.GetByUsername("ghost")
		if err != nil || u != nil {
			t.Fatalf("expected (nil, nil), got (%+v, %v)", u, err)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
			WithArgs("driver").
			WillReturnError(errors.New("db down"))

		u, err := repo.GetByUsername("driver")
		if err == nil || !strings.Contains(err.Error(), "select user") {
			t.Fatalf("expected wrapped error, got %v", err)
		}
		if u != nil {
			t.Fatalf("expected nil user on error")
		}
	})
}
