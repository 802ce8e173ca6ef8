// Package storage persists planner state between runs.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
)

// ErrNoState is returned by Load when nothing has been saved yet.
var ErrNoState = errors.New("no saved planner state")

// Persister loads and saves the whole planner state as one document.
type Persister interface {
	Load(ctx context.Context) (*domain.PlannerState, error)
	Save(ctx context.Context, s *domain.PlannerState) error
}

// SlotInfo describes one saved document.
type SlotInfo struct {
	Name      string
	Revision  int
	UpdatedAt time.Time
	Current   bool
}

// Inspector is implemented by persisters that can report what they hold
// and discard their own slot.
type Inspector interface {
	Describe(ctx context.Context) (Description, error)
	Reset(ctx context.Context) error
}

// Description summarizes a backend for the status command.
type Description struct {
	Backend  string
	Location string
	Slots    []SlotInfo
}
