package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/snapshot"
)

var (
	ErrInvalidKey      = errors.New("invalid week key")
	ErrInvalidDay      = errors.New("invalid day index")
	ErrInvalidViewMode = errors.New("invalid view mode")
	ErrInvalidTask     = errors.New("invalid task")
	// ErrIDCollision means the id source kept returning ids already used in
	// the target sequence.
	ErrIDCollision = errors.New("could not generate a unique task id")
)

// ImportError reports why an import was rejected. State is never changed
// when one is returned.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	return "import failed: " + e.Reason
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func newImportError(err error) *ImportError {
	var verr *snapshot.ValidationError
	switch {
	case errors.Is(err, snapshot.ErrMalformed):
		return &ImportError{Reason: "input is not a planner export: " + err.Error(), Err: err}
	case errors.Is(err, snapshot.ErrUnsupportedVersion):
		return &ImportError{Reason: "export was written by a newer version", Err: err}
	case errors.As(err, &verr):
		return &ImportError{Reason: verr.Error(), Err: err}
	}
	return &ImportError{Reason: err.Error(), Err: err}
}

// validateTask checks the fields a caller can set on a task.
func validateTask(t domain.TaskInstance) error {
	var problems []string
	if strings.TrimSpace(t.Text) == "" {
		problems = append(problems, "text is required")
	}
	if !t.Zone.Valid() {
		problems = append(problems, fmt.Sprintf("zone: invalid value %q", t.Zone))
	}
	if !t.Energy.Valid() {
		problems = append(problems, fmt.Sprintf("energy: invalid value %q", t.Energy))
	}
	if t.Frequency != "" && !t.Frequency.Valid() {
		problems = append(problems, fmt.Sprintf("frequency: invalid value %q", t.Frequency))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTask, strings.Join(problems, "; "))
	}
	return nil
}
