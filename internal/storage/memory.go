package storage

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/snapshot"
)

// noTimestamp leaves exportedAt out of persisted documents.
var noTimestamp time.Time

// Memory holds the encoded state in process memory. Documents still go
// through the snapshot codec so saved state is isolated from later
// mutation.
type Memory struct {
	mu       sync.Mutex
	data     []byte
	revision int
	updated  time.Time
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(context.Context) (*domain.PlannerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoState
	}
	return snapshot.Decode(m.data, snapshot.FormatJSON)
}

func (m *Memory) Save(_ context.Context, state *domain.PlannerState) error {
	data, err := snapshot.Encode(state, snapshot.FormatJSON, noTimestamp)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.revision++
	m.updated = time.Now().UTC()
	return nil
}

func (m *Memory) Describe(context.Context) (Description, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := Description{Backend: "memory", Location: "(process memory)"}
	if m.data != nil {
		d.Slots = []SlotInfo{{Name: "memory", Revision: m.revision, UpdatedAt: m.updated, Current: true}}
	}
	return d, nil
}

func (m *Memory) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.revision = 0
	return nil
}
