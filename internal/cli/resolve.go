package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/domain"
)

const taskRefHelp = `REF is the task's position as shown by "show" (optionally prefixed
with #), its ID, or a unique ID prefix. A reference of one to three digits
is always read as a position; give at least four characters to match an
ID prefix made of digits.`

// resolveTaskRef resolves a task reference within one sequence. A reference
// can be:
//   - A 1-based position as shown by "show" (all digits, under 4 characters)
//   - A full task ID
//   - A unique ID prefix
func resolveTaskRef(tasks []domain.TaskInstance, ref string) (domain.TaskInstance, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	if ref == "" {
		return domain.TaskInstance{}, fmt.Errorf("empty task reference")
	}

	if n, ok := positionArg(ref); ok && len(ref) < 4 {
		if n > len(tasks) {
			return domain.TaskInstance{}, fmt.Errorf("no task #%d (%d planned)", n, len(tasks))
		}
		return tasks[n-1], nil
	}

	if i := domain.FindTask(tasks, ref); i >= 0 {
		return tasks[i], nil
	}

	var matches []domain.TaskInstance
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return domain.TaskInstance{}, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	}
	return domain.TaskInstance{}, fmt.Errorf("prefix %q is ambiguous (%d matches)", ref, len(matches))
}

// resolveTaskRefs resolves every reference before anything is changed, so a
// bad reference aborts the whole command.
func resolveTaskRefs(tasks []domain.TaskInstance, refs []string) ([]domain.TaskInstance, error) {
	out := make([]domain.TaskInstance, 0, len(refs))
	for _, ref := range refs {
		t, err := resolveTaskRef(tasks, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
