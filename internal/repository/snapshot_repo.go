package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type SnapshotSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db, now: time.Now}
}

var _ SnapshotRepo = (*SnapshotSQLite)(nil)

const (
	upsertSnapshotSQL = `
		INSERT INTO parking_snapshots (owner_id, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			body=excluded.body,
			updated_at=excluded.updated_at
	`

	selectSnapshotSQL = `SELECT body FROM parking_snapshots WHERE owner_id=?`

	selectSnapshotOwnersSQL = `SELECT owner_id FROM parking_snapshots ORDER BY owner_id`
)

// Save overwrites the owner's snapshot.
func (r *SnapshotSQLite) Save(ctx context.Context, ownerID int, body []byte) error {
	if _, err := r.db.ExecContext(ctx, upsertSnapshotSQL, ownerID, string(body), r.now().UTC()); err != nil {
		return fmt.Errorf("save snapshot for owner %d: %w", ownerID, err)
	}
	return nil
}

// Load returns the owner's snapshot, or nil if none was saved yet.
func (r *SnapshotSQLite) Load(ctx context.Context, ownerID int) ([]byte, error) {
	var body string
	err := r.db.QueryRowContext(ctx, selectSnapshotSQL, ownerID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // no snapshot yet
		}
		return nil, fmt.Errorf("load snapshot for owner %d: %w", ownerID, err)
	}
	return []byte(body), nil
}

// Owners lists every owner that has a snapshot.
func (r *SnapshotSQLite) Owners(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, selectSnapshotOwnersSQL)
	if err != nil {
		return nil, fmt.Errorf("list snapshot owners: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
