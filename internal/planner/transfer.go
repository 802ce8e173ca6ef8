package planner

import (
	"context"

	"github.com/alexanderramin/choreplan/internal/snapshot"
)

// ExportData serializes the full state as an indented JSON document.
func (s *Store) ExportData(ctx context.Context) ([]byte, error) {
	return s.ExportAs(ctx, snapshot.FormatJSON)
}

// ExportAs serializes the full state in the given format.
func (s *Store) ExportAs(ctx context.Context, format snapshot.Format) (data []byte, err error) {
	fields := map[string]any{"format": string(format)}
	defer s.track(ctx, "export", fields)(&err)

	data, err = snapshot.Encode(&s.state, format, s.now())
	if err != nil {
		return nil, err
	}
	fields["bytes"] = len(data)
	return data, nil
}

// ImportData replaces the whole state with a JSON export. On failure it
// returns an *ImportError and the state is unchanged.
func (s *Store) ImportData(ctx context.Context, data []byte) error {
	return s.ImportAs(ctx, data, snapshot.FormatJSON)
}

// ImportAs is ImportData for an explicit format.
func (s *Store) ImportAs(ctx context.Context, data []byte, format snapshot.Format) (err error) {
	fields := map[string]any{"format": string(format), "bytes": len(data)}
	defer s.track(ctx, "import", fields)(&err)

	state, decodeErr := snapshot.Decode(data, format)
	if decodeErr != nil {
		return newImportError(decodeErr)
	}
	fields["weeks"] = len(state.WeekData)
	s.commit(ctx, *state)
	return nil
}
