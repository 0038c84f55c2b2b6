package repository

import (
	"context"
	"database/sql"
	"time"

	"parking_sms/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// SnapshotRepo stores one opaque snapshot document per owner and only ever
// reads or writes it whole.
type SnapshotRepo interface {
	Load(ctx context.Context, ownerID int) ([]byte, error) // nil, nil when absent
	Save(ctx context.Context, ownerID int, body []byte) error
	Owners(ctx context.Context) ([]int, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.ParkingEvent) error
	List(ctx context.Context, ownerID int, from, to time.Time, typ string) ([]models.ParkingEvent, error)
}

type Repository struct {
	Snapshots SnapshotRepo
	EventRepo EventRepo
	Auth      Authorization
}

// NewRepository wires the SQLite-backed repositories. Callers may replace
// Snapshots with another store (see NewSnapshotRedis).
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Snapshots: NewSnapshotSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
