// Package planner owns the chore planner state and every operation on it.
package planner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/storage"
)

// Store is the single owner of a PlannerState. It is not safe for
// concurrent use. Values returned by readers share structure with the
// store and must not be modified.
type Store struct {
	state     domain.PlannerState
	persister storage.Persister
	gen       *catalog.Generator
	observer  Observer
	now       func() time.Time
	saveErr   error
	restored  bool
}

// Option configures a Store.
type Option func(*options)

type options struct {
	now      func() time.Time
	ids      catalog.IDSource
	catalog  *catalog.Catalog
	observer Observer
}

// WithClock sets the clock used for the initial week and export timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDSource sets the instance id generator.
func WithIDSource(ids catalog.IDSource) Option {
	return func(o *options) { o.ids = ids }
}

// WithCatalog replaces the built-in catalog used for defaults and fills.
func WithCatalog(c catalog.Catalog) Option {
	return func(o *options) { o.catalog = &c }
}

// WithObserver sets the observer for operation events.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// New builds a store from the persisted state. When nothing usable is
// stored it starts from generated defaults for the current week; the
// reason is reported to the observer, never returned. A nil persister
// keeps state in memory only.
func New(ctx context.Context, persister storage.Persister, opts ...Option) *Store {
	o := options{now: time.Now, observer: NoopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	cat := catalog.Default()
	if o.catalog != nil {
		cat = *o.catalog
	}
	if o.observer == nil {
		o.observer = NoopObserver{}
	}

	s := &Store{
		persister: persister,
		gen:       catalog.NewGenerator(cat, o.ids),
		observer:  o.observer,
		now:       o.now,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	fields := map[string]any{}
	var err error
	defer s.track(ctx, "load", fields)(&err)

	if s.persister == nil {
		s.state = s.defaultState()
		fields["source"] = "defaults"
		return
	}

	var loaded *domain.PlannerState
	loaded, err = s.persister.Load(ctx)
	switch {
	case err == nil && loaded != nil:
		s.state = *loaded
		s.restored = true
		fields["source"] = "storage"
	case errors.Is(err, storage.ErrNoState) || (err == nil && loaded == nil):
		err = nil
		s.state = s.defaultState()
		fields["source"] = "defaults"
	default:
		s.state = s.defaultState()
		fields["source"] = "defaults"
		fields["fallback"] = true
	}
	fields["week"] = s.state.CurrentWeekStart
}

// defaultState seeds the current week, and the month and year that week
// belongs to, from the catalog.
func (s *Store) defaultState() domain.PlannerState {
	key := domain.WeekKey(s.now())
	return domain.PlannerState{
		CurrentWeekStart: key,
		ViewMode:         domain.ViewWeekly,
		WeekData:         map[string]domain.WeekBucket{key: s.gen.Week()},
		MonthlyData:      map[string][]domain.TaskInstance{domain.MonthKey(key): s.gen.Month()},
		YearlyData:       map[string][]domain.TaskInstance{domain.YearKey(key): s.gen.Year()},
		TaskBank:         slices.Clone(s.gen.Catalog().Templates),
	}
}

// commit installs next and saves it. Save failures are kept for SaveErr and
// reported to the observer.
func (s *Store) commit(ctx context.Context, next domain.PlannerState) {
	s.state = next
	if s.persister == nil {
		return
	}
	var err error
	done := s.track(ctx, "save", map[string]any{"week": next.CurrentWeekStart})
	err = s.persister.Save(ctx, &next)
	done(&err)
	s.saveErr = err
}

// SaveErr returns the error from the most recent save, or nil.
func (s *Store) SaveErr() error { return s.saveErr }

// Restored reports whether the state came from storage rather than
// generated defaults.
func (s *Store) Restored() bool { return s.restored }

// Catalog returns the catalog used for defaults and fills.
func (s *Store) Catalog() catalog.Catalog { return s.gen.Catalog() }

// State returns the current state.
func (s *Store) State() domain.PlannerState { return s.state }

func (s *Store) CurrentWeekStart() string { return s.state.CurrentWeekStart }

func (s *Store) ViewMode() domain.ViewMode { return s.state.ViewMode }

func (s *Store) WeekData() map[string]domain.WeekBucket { return s.state.WeekData }

func (s *Store) MonthlyData() map[string][]domain.TaskInstance { return s.state.MonthlyData }

func (s *Store) YearlyData() map[string][]domain.TaskInstance { return s.state.YearlyData }

func (s *Store) TaskBank() []domain.TaskTemplate { return s.state.TaskBank }

// Week returns the week bucket at key; an absent week reads as empty.
func (s *Store) Week(key string) domain.WeekBucket { return s.state.WeekData[key] }

// Month returns the month bucket that the week at weekKey belongs to.
func (s *Store) Month(weekKey string) []domain.TaskInstance {
	return s.state.MonthlyData[domain.MonthKey(weekKey)]
}

// Year returns the year bucket that the week at weekKey belongs to.
func (s *Store) Year(weekKey string) []domain.TaskInstance {
	return s.state.YearlyData[domain.YearKey(weekKey)]
}

// Sequence returns the tasks addressed by (key, day) in the current view
// mode. Invalid addresses read as empty.
func (s *Store) Sequence(key string, day int) []domain.TaskInstance {
	b, bkey, day, err := s.address(key, day)
	if err != nil {
		return nil
	}
	return b.get(&s.state, bkey, day)
}

// Progress counts completion over the addressed sequence.
func (s *Store) Progress(key string, day int) domain.Progress {
	return domain.CountProgress(s.Sequence(key, day))
}

// address resolves a caller key and day against the current view mode.
func (s *Store) address(key string, day int) (bucket, string, int, error) {
	b, ok := bucketFor(s.state.ViewMode)
	if !ok {
		b = weekly
	}
	if _, err := domain.ParseWeekKey(key); err != nil {
		return b, "", 0, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if b.flat {
		return b, b.key(key), 0, nil
	}
	if day < 0 || day >= domain.DaysPerWeek {
		return b, "", 0, fmt.Errorf("%w: %d (expected 0..%d)", ErrInvalidDay, day, domain.DaysPerWeek-1)
	}
	return b, b.key(key), day, nil
}
