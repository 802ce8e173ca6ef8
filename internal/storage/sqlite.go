package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/repository"
	"github.com/alexanderramin/choreplan/internal/snapshot"
)

// SQLite keeps the state in one named row of the planner_slots table.
type SQLite struct {
	slots    repository.SlotRepo
	name     string
	location string
}

// NewSQLite returns a persister for the named slot. location is only used
// for display.
func NewSQLite(slots repository.SlotRepo, name, location string) *SQLite {
	return &SQLite{slots: slots, name: name, location: location}
}

func (s *SQLite) Load(ctx context.Context) (*domain.PlannerState, error) {
	slot, err := s.slots.Get(ctx, s.name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoState
		}
		return nil, err
	}
	state, err := snapshot.Decode(slot.Payload, snapshot.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("slot %q revision %d: %w", s.name, slot.Revision, err)
	}
	return state, nil
}

func (s *SQLite) Save(ctx context.Context, state *domain.PlannerState) error {
	data, err := snapshot.Encode(state, snapshot.FormatJSON, noTimestamp)
	if err != nil {
		return err
	}
	if _, err := s.slots.Put(ctx, s.name, data); err != nil {
		return err
	}
	return nil
}

func (s *SQLite) Describe(ctx context.Context) (Description, error) {
	slots, err := s.slots.List(ctx)
	if err != nil {
		return Description{}, err
	}
	d := Description{Backend: "sqlite", Location: s.location}
	for _, slot := range slots {
		d.Slots = append(d.Slots, SlotInfo{
			Name:      slot.Name,
			Revision:  slot.Revision,
			UpdatedAt: slot.UpdatedAt,
			Current:   slot.Name == s.name,
		})
	}
	return d, nil
}

func (s *SQLite) Reset(ctx context.Context) error {
	err := s.slots.Delete(ctx, s.name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
