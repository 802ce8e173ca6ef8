package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/snapshot"
	"github.com/alexanderramin/choreplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyStore(t *testing.T) *Store {
	t.Helper()
	s, _ := newTestStore(t)
	ctx := context.Background()

	task, err := s.AddTask(ctx, week, 3, testutil.NewTestDraft("Mop", testutil.WithNote("hall too")))
	require.NoError(t, err)
	require.True(t, s.ToggleTask(ctx, week, 3, task.ID))
	s.NextWeek(ctx)
	require.NoError(t, s.SetViewMode(ctx, domain.ViewMonthly))
	_, err = s.AddTask(ctx, s.CurrentWeekStart(), 0, testutil.NewTestDraft("Descale", testutil.WithFrequency(domain.FrequencyMonthly)))
	require.NoError(t, err)
	return s
}

func TestExportImport_RoundTrip(t *testing.T) {
	for _, format := range []snapshot.Format{snapshot.FormatJSON, snapshot.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			src := busyStore(t)
			ctx := context.Background()

			data, err := src.ExportAs(ctx, format)
			require.NoError(t, err)

			dst := newEmptyStore(t)
			require.NoError(t, dst.ImportAs(ctx, data, format))
			assert.Equal(t, src.State(), dst.State())
		})
	}
}

func TestExportData_Document(t *testing.T) {
	s := busyStore(t)
	data, err := s.ExportData(context.Background())
	require.NoError(t, err)

	text := string(data)
	for _, want := range []string{
		`"version": 1`,
		`"exportedAt": "2025-06-04T09:00:00Z"`,
		`"currentWeekStart": "2025-06-09"`,
		`"viewMode": "monthly"`,
		`"weekData"`, `"monthlyData"`, `"yearlyData"`, `"taskBank"`,
		`"note": "hall too"`,
	} {
		assert.Contains(t, text, want)
	}
}

func TestImportData_NotJSONLeavesStateUntouched(t *testing.T) {
	s, p := newTestStore(t)
	before := s.State()

	err := s.ImportData(context.Background(), []byte("not json"))
	require.Error(t, err)

	var ierr *ImportError
	require.True(t, errors.As(err, &ierr))
	assert.Contains(t, ierr.Reason, "not a planner export")
	assert.ErrorIs(t, err, snapshot.ErrMalformed)
	assert.Equal(t, before, s.State())
	assert.Empty(t, p.Saved())
}

func TestImportData_RejectsInvalidDocumentsWhole(t *testing.T) {
	cases := map[string]string{
		"future version": `{"version": 7, "state": {}}`,
		"short week": `{"version":1,"state":{"currentWeekStart":"2025-06-02","viewMode":"weekly",
			"weekData":{"2025-06-02":{"days":[[],[]]}},"monthlyData":{},"yearlyData":{},"taskBank":[]}}`,
		"duplicate ids": `{"version":1,"state":{"currentWeekStart":"2025-06-02","viewMode":"weekly",
			"weekData":{},"monthlyData":{"2025-06":[
				{"id":"a","text":"x","zone":"kitchen","energy":"low","completed":false,"note":""},
				{"id":"a","text":"y","zone":"kitchen","energy":"low","completed":false,"note":""}]},
			"yearlyData":{},"taskBank":[]}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			s, p := newTestStore(t)
			before := s.State()

			err := s.ImportData(context.Background(), []byte(doc))
			var ierr *ImportError
			require.True(t, errors.As(err, &ierr), "got %v", err)
			assert.NotEmpty(t, ierr.Reason)
			assert.Equal(t, before, s.State())
			assert.Empty(t, p.Saved())
		})
	}
}

func TestImportData_ReplacesEverythingAndSaves(t *testing.T) {
	s, p := newTestStore(t)
	doc := `{"version":1,"state":{"currentWeekStart":"2024-02-07","viewMode":"yearly",
		"weekData":{},"monthlyData":{},
		"yearlyData":{"2024":[{"id":"y","text":"Flip mattress","zone":"bedroom","energy":"high","completed":true,"note":""}]},
		"taskBank":[]}}`

	require.NoError(t, s.ImportData(context.Background(), []byte(doc)))
	assert.Equal(t, "2024-02-05", s.CurrentWeekStart())
	assert.Equal(t, domain.ViewYearly, s.ViewMode())
	assert.Empty(t, s.WeekData())
	assert.Empty(t, s.TaskBank())
	assert.Equal(t, "Flip mattress", s.Sequence(s.CurrentWeekStart(), 0)[0].Text)

	saved := p.Saved()
	require.Len(t, saved, 1)
	assert.Equal(t, s.State(), *saved[0])
}
