package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
)

// SetViewMode switches which bucket later operations address. The current
// week is unchanged.
func (s *Store) SetViewMode(ctx context.Context, mode domain.ViewMode) (err error) {
	defer s.track(ctx, "set-view-mode", map[string]any{"mode": string(mode)})(&err)

	if _, ok := bucketFor(mode); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, mode)
	}
	if mode == s.state.ViewMode {
		return nil
	}
	next := s.state
	next.ViewMode = mode
	s.commit(ctx, next)
	return nil
}

// NextWeek moves the current week forward by seven days, in every view mode.
func (s *Store) NextWeek(ctx context.Context) {
	s.shiftWeek(ctx, 1)
}

// PrevWeek moves the current week back by seven days.
func (s *Store) PrevWeek(ctx context.Context) {
	s.shiftWeek(ctx, -1)
}

func (s *Store) shiftWeek(ctx context.Context, n int) {
	fields := map[string]any{"from": s.state.CurrentWeekStart, "weeks": n}
	var err error
	defer s.track(ctx, "navigate-week", fields)(&err)

	var key string
	key, err = domain.ShiftWeek(s.state.CurrentWeekStart, n)
	if err != nil {
		return
	}
	fields["to"] = key
	next := s.state
	next.CurrentWeekStart = key
	s.commit(ctx, next)
}

// GoToWeek makes the week containing t current.
func (s *Store) GoToWeek(ctx context.Context, t time.Time) {
	key := domain.WeekKey(t)
	defer s.track(ctx, "navigate-week", map[string]any{"from": s.state.CurrentWeekStart, "to": key})(nil)

	if key == s.state.CurrentWeekStart {
		return
	}
	next := s.state
	next.CurrentWeekStart = key
	s.commit(ctx, next)
}

// Today returns the week key of the store's clock.
func (s *Store) Today() string {
	return domain.WeekKey(s.now())
}
