package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/choreplan/internal/db"
)

// SQLiteSlotRepo implements SlotRepo using a SQLite database.
type SQLiteSlotRepo struct {
	db db.DBTX
}

// NewSQLiteSlotRepo creates a new SQLiteSlotRepo.
func NewSQLiteSlotRepo(conn db.DBTX) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: conn}
}

func (r *SQLiteSlotRepo) Get(ctx context.Context, name string) (*Slot, error) {
	query := `SELECT name, payload, revision, updated_at FROM planner_slots WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)

	var s Slot
	var updatedAt string
	if err := row.Scan(&s.Name, &s.Payload, &s.Revision, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("slot %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning slot %q: %w", name, err)
	}
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func (r *SQLiteSlotRepo) Put(ctx context.Context, name string, payload []byte) (int, error) {
	query := `INSERT INTO planner_slots (name, payload, revision, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			revision = planner_slots.revision + 1,
			updated_at = excluded.updated_at
		RETURNING revision`

	var revision int
	if err := r.db.QueryRowContext(ctx, query, name, payload, nowUTC()).Scan(&revision); err != nil {
		return 0, fmt.Errorf("writing slot %q: %w", name, err)
	}
	return revision, nil
}

func (r *SQLiteSlotRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM planner_slots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting slot %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting slot %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("slot %q: %w", name, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSlotRepo) List(ctx context.Context) ([]*Slot, error) {
	query := `SELECT name, revision, updated_at FROM planner_slots ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	defer rows.Close()

	var slots []*Slot
	for rows.Next() {
		var s Slot
		var updatedAt string
		if err := rows.Scan(&s.Name, &s.Revision, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		s.UpdatedAt = parseTime(updatedAt)
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}
