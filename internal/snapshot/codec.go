package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected json or yaml)", s)
}

// FormatForPath guesses the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

var (
	// ErrMalformed wraps decoder failures: the input is not a document at all.
	ErrMalformed = errors.New("malformed document")
	// ErrUnsupportedVersion is returned for documents newer than Version.
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

// ValidationError lists every structural problem found in a document.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid planner state (%d problems):", len(e.Problems))
	for _, p := range e.Problems {
		msg += "\n  - " + p.Error()
	}
	return msg
}

// Encode serializes the full state. exportedAt may be zero to omit the
// timestamp (persistence does, exports do not).
func Encode(s *domain.PlannerState, format Format, exportedAt time.Time) ([]byte, error) {
	doc := Document{Version: Version, State: FromState(s)}
	if !exportedAt.IsZero() {
		doc.ExportedAt = exportedAt.UTC().Format(time.RFC3339)
	}

	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// Decode parses and validates a document. Nothing is returned unless the
// whole document is valid.
func Decode(data []byte, format Format) (*domain.PlannerState, error) {
	var doc Document
	switch format {
	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	if doc.Version < 0 || doc.Version > Version {
		return nil, fmt.Errorf("%w: %d (this build reads up to %d)", ErrUnsupportedVersion, doc.Version, Version)
	}

	normalize(&doc.State)
	if problems := Validate(doc.State); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return doc.State.toState(), nil
}

// normalize fills defaults older documents may omit: a missing view mode
// reads as weekly and the current week is aligned to its Monday.
func normalize(d *StateDoc) {
	if d.ViewMode == "" {
		d.ViewMode = domain.ViewWeekly
	}
	if t, err := domain.ParseWeekKey(d.CurrentWeekStart); err == nil {
		d.CurrentWeekStart = domain.WeekKey(t)
	}
}
