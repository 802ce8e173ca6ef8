package planner

import (
	"context"
	"fmt"
	"slices"

	"github.com/alexanderramin/choreplan/internal/domain"
)

const maxIDAttempts = 16

// AddTask appends a new incomplete task to the addressed sequence, creating
// the bucket if needed, and returns it.
func (s *Store) AddTask(ctx context.Context, key string, day int, draft domain.TaskDraft) (task domain.TaskInstance, err error) {
	fields := map[string]any{"key": key, "day": day, "mode": string(s.state.ViewMode)}
	defer s.track(ctx, "add-task", fields)(&err)

	b, bkey, day, err := s.address(key, day)
	if err != nil {
		return domain.TaskInstance{}, err
	}
	seq := b.get(&s.state, bkey, day)

	id, err := s.uniqueID(seq)
	if err != nil {
		return domain.TaskInstance{}, err
	}
	task = draft.Instance(id)
	if err = validateTask(task); err != nil {
		return domain.TaskInstance{}, err
	}
	fields["task_id"] = id

	next := s.state
	b.put(&next, bkey, day, append(slices.Clip(seq), task))
	s.commit(ctx, next)
	return task, nil
}

// UpdateTask merges patch into the task with id. It reports whether a task
// matched; a miss leaves state untouched and is not an error. The id and
// position of the task never change.
func (s *Store) UpdateTask(ctx context.Context, key string, day int, id string, patch domain.TaskPatch) (found bool, err error) {
	fields := map[string]any{"key": key, "day": day, "task_id": id}
	defer s.track(ctx, "update-task", fields)(&err)

	b, bkey, day, seq, i := s.locate(key, day, id)
	if i < 0 {
		fields["miss"] = true
		return false, nil
	}
	updated := patch.Apply(seq[i])
	if err = validateTask(updated); err != nil {
		return true, err
	}
	s.replaceAt(ctx, b, bkey, day, seq, i, updated)
	return true, nil
}

// ToggleTask flips the completed flag of the task with id and reports
// whether one matched.
func (s *Store) ToggleTask(ctx context.Context, key string, day int, id string) bool {
	fields := map[string]any{"key": key, "day": day, "task_id": id}
	defer s.track(ctx, "toggle-task", fields)(nil)

	b, bkey, day, seq, i := s.locate(key, day, id)
	if i < 0 {
		fields["miss"] = true
		return false
	}
	t := seq[i]
	t.Completed = !t.Completed
	fields["completed"] = t.Completed
	s.replaceAt(ctx, b, bkey, day, seq, i, t)
	return true
}

// RemoveTask deletes the task with id and reports whether one matched. The
// sequence is kept, possibly empty; other tasks keep their order.
func (s *Store) RemoveTask(ctx context.Context, key string, day int, id string) bool {
	fields := map[string]any{"key": key, "day": day, "task_id": id}
	defer s.track(ctx, "remove-task", fields)(nil)

	b, bkey, day, seq, i := s.locate(key, day, id)
	if i < 0 {
		fields["miss"] = true
		return false
	}
	next := s.state
	b.put(&next, bkey, day, slices.Delete(slices.Clone(seq), i, i+1))
	s.commit(ctx, next)
	return true
}

// AutoFill replaces the whole bucket addressed by key with freshly
// generated defaults for the current view mode. Completion and notes in
// that bucket are lost; callers are expected to confirm first.
func (s *Store) AutoFill(ctx context.Context, key string) (err error) {
	fields := map[string]any{"key": key, "mode": string(s.state.ViewMode)}
	defer s.track(ctx, "auto-fill", fields)(&err)

	b, bkey, _, err := s.address(key, 0)
	if err != nil {
		return err
	}
	next := s.state
	b.fill(&next, bkey, s.gen)
	fields["bucket"] = bkey
	s.commit(ctx, next)
	return nil
}

// locate finds id in the addressed sequence. i is -1 on any miss,
// including an invalid key or day.
func (s *Store) locate(key string, day int, id string) (b bucket, bkey string, d int, seq []domain.TaskInstance, i int) {
	b, bkey, d, err := s.address(key, day)
	if err != nil {
		return b, "", 0, nil, -1
	}
	seq = b.get(&s.state, bkey, d)
	return b, bkey, d, seq, domain.FindTask(seq, id)
}

func (s *Store) replaceAt(ctx context.Context, b bucket, bkey string, day int, seq []domain.TaskInstance, i int, t domain.TaskInstance) {
	updated := slices.Clone(seq)
	updated[i] = t
	next := s.state
	b.put(&next, bkey, day, updated)
	s.commit(ctx, next)
}

// uniqueID draws ids until one is unused in seq.
func (s *Store) uniqueID(seq []domain.TaskInstance) (string, error) {
	for range maxIDAttempts {
		id := s.gen.NewID()
		if id != "" && domain.FindTask(seq, id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrIDCollision, maxIDAttempts)
}
