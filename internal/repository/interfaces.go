package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is wrapped by repository lookups that match no row.
var ErrNotFound = errors.New("not found")

// Slot is one named, serialized planner document.
type Slot struct {
	Name      string
	Payload   []byte
	Revision  int
	UpdatedAt time.Time
}

type SlotRepo interface {
	Get(ctx context.Context, name string) (*Slot, error)
	// Put stores payload under name and returns the slot's new revision.
	Put(ctx context.Context, name string, payload []byte) (int, error)
	Delete(ctx context.Context, name string) error
	// List returns slot metadata ordered by name. Payloads are not loaded.
	List(ctx context.Context) ([]*Slot, error)
}
