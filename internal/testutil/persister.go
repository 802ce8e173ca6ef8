package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/choreplan/internal/domain"
)

// FailingPersister returns LoadErr from Load and SaveErr from every Save.
// Saves are counted so tests can assert the store attempted them.
type FailingPersister struct {
	LoadErr error
	SaveErr error

	saves atomic.Int32
}

func (p *FailingPersister) Load(context.Context) (*domain.PlannerState, error) {
	return nil, p.LoadErr
}

func (p *FailingPersister) Save(context.Context, *domain.PlannerState) error {
	p.saves.Add(1)
	return p.SaveErr
}

// Saves reports how many times Save was called.
func (p *FailingPersister) Saves() int {
	return int(p.saves.Load())
}

// RecordingPersister keeps every saved state in memory. Load returns the
// most recent save, or Initial when nothing has been saved yet.
type RecordingPersister struct {
	Initial *domain.PlannerState
	LoadErr error

	mu    sync.Mutex
	saved []*domain.PlannerState
}

func (p *RecordingPersister) Load(context.Context) (*domain.PlannerState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.LoadErr != nil {
		return nil, p.LoadErr
	}
	if n := len(p.saved); n > 0 {
		return p.saved[n-1], nil
	}
	return p.Initial, nil
}

func (p *RecordingPersister) Save(_ context.Context, s *domain.PlannerState) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saved = append(p.saved, s)
	return nil
}

// Saved returns every state passed to Save, oldest first.
func (p *RecordingPersister) Saved() []*domain.PlannerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*domain.PlannerState(nil), p.saved...)
}
