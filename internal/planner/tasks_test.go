package planner

import (
	"context"
	"testing"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyState is a planner with no buckets at all.
func emptyState() *domain.PlannerState {
	return &domain.PlannerState{
		CurrentWeekStart: week,
		ViewMode:         domain.ViewWeekly,
		WeekData:         map[string]domain.WeekBucket{},
		MonthlyData:      map[string][]domain.TaskInstance{},
		YearlyData:       map[string][]domain.TaskInstance{},
		TaskBank:         []domain.TaskTemplate{},
	}
}

func newEmptyStore(t *testing.T) *Store {
	t.Helper()
	return New(context.Background(), &testutil.RecordingPersister{Initial: emptyState()},
		WithClock(testutil.FixedClock(2025, 6, 4)),
		WithIDSource(testutil.NewSeqIDs("t")))
}

func ids(tasks []domain.TaskInstance) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestAddTask_OnEmptyStateCreatesWeek(t *testing.T) {
	s := newEmptyStore(t)

	task, err := s.AddTask(context.Background(), week, 3, domain.TaskDraft{
		Text: "Mop", Zone: domain.ZoneDeep, Energy: domain.EnergyHigh, Frequency: domain.FrequencyWeekly,
	})
	require.NoError(t, err)

	w, ok := s.WeekData()[week]
	require.True(t, ok)
	require.Len(t, w.Days[3], 1)
	got := w.Days[3][0]
	assert.Equal(t, task, got)
	assert.Equal(t, "Mop", got.Text)
	assert.Equal(t, domain.ZoneDeep, got.Zone)
	assert.Equal(t, domain.EnergyHigh, got.Energy)
	assert.False(t, got.Completed)
	assert.Equal(t, "", got.Note)
	assert.NotEmpty(t, got.ID)
	for i, d := range w.Days {
		if i != 3 {
			assert.Empty(t, d)
		}
	}
}

func TestAddTask_AppendsWithUniqueID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for day := range domain.DaysPerWeek {
		before := ids(s.Sequence(week, day))
		task, err := s.AddTask(ctx, week, day, testutil.NewTestDraft("Extra"))
		require.NoError(t, err)

		after := s.Sequence(week, day)
		require.Len(t, after, len(before)+1)
		assert.Equal(t, task, after[len(after)-1])
		assert.NotContains(t, before, task.ID)
		assert.Equal(t, before, ids(after[:len(before)]), "existing order kept")
	}
}

func TestAddTask_RetriesCollidingIDs(t *testing.T) {
	s := New(context.Background(), &testutil.RecordingPersister{Initial: emptyState()},
		WithIDSource(testutil.NewSeqIDs("dup")))
	ctx := context.Background()

	first, err := s.AddTask(ctx, week, 0, testutil.NewTestDraft("a"))
	require.NoError(t, err)
	// Seed the sequence with the id the source issues next.
	state := emptyState()
	state.WeekData[week] = domain.WeekBucket{}.WithDay(0, []domain.TaskInstance{
		first, {ID: "dup-2", Text: "b", Zone: domain.ZoneKitchen, Energy: domain.EnergyLow},
	})
	s.state = *state

	third, err := s.AddTask(ctx, week, 0, testutil.NewTestDraft("c"))
	require.NoError(t, err)
	assert.Equal(t, "dup-3", third.ID)
}

type constantIDs string

func (c constantIDs) NewID() string { return string(c) }

func TestAddTask_GivesUpOnStuckIDSource(t *testing.T) {
	s := New(context.Background(), &testutil.RecordingPersister{Initial: emptyState()},
		WithIDSource(constantIDs("same")))
	ctx := context.Background()

	_, err := s.AddTask(ctx, week, 0, testutil.NewTestDraft("a"))
	require.NoError(t, err)
	_, err = s.AddTask(ctx, week, 0, testutil.NewTestDraft("b"))
	assert.ErrorIs(t, err, ErrIDCollision)
	assert.Len(t, s.Sequence(week, 0), 1)

	_, err = s.AddTask(ctx, week, 1, testutil.NewTestDraft("b"))
	assert.NoError(t, err, "uniqueness is per sequence")
}

func TestAddTask_Rejections(t *testing.T) {
	s := newEmptyStore(t)
	ctx := context.Background()

	_, err := s.AddTask(ctx, "2025-13-01", 0, testutil.NewTestDraft("x"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = s.AddTask(ctx, week, 7, testutil.NewTestDraft("x"))
	assert.ErrorIs(t, err, ErrInvalidDay)
	_, err = s.AddTask(ctx, week, -1, testutil.NewTestDraft("x"))
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = s.AddTask(ctx, week, 0, domain.TaskDraft{Text: "  ", Zone: "garage", Energy: domain.EnergyLow})
	require.ErrorIs(t, err, ErrInvalidTask)
	assert.Contains(t, err.Error(), "text is required")
	assert.Contains(t, err.Error(), `zone: invalid value "garage"`)

	assert.Empty(t, s.WeekData(), "rejected adds leave state untouched")
}

func TestAddTask_FlatBucketsIgnoreDay(t *testing.T) {
	s := newEmptyStore(t)
	ctx := context.Background()
	require.NoError(t, s.SetViewMode(ctx, domain.ViewMonthly))

	a, err := s.AddTask(ctx, week, 5, testutil.NewTestDraft("Descale kettle"))
	require.NoError(t, err)
	b, err := s.AddTask(ctx, week, 99, testutil.NewTestDraft("Test alarms"))
	require.NoError(t, err)

	assert.Equal(t, []string{a.ID, b.ID}, ids(s.MonthlyData()["2025-06"]))
	assert.Empty(t, s.WeekData())

	require.NoError(t, s.SetViewMode(ctx, domain.ViewYearly))
	c, err := s.AddTask(ctx, "2025-12-29", 0, testutil.NewTestDraft("Gutters"))
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID}, ids(s.YearlyData()["2025"]))
}

func TestToggleTask_IsInvolution(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	orig := s.Sequence(week, 4)[0]
	require.True(t, s.ToggleTask(ctx, week, 4, orig.ID))
	toggled := s.Sequence(week, 4)[0]
	assert.Equal(t, !orig.Completed, toggled.Completed)

	require.True(t, s.ToggleTask(ctx, week, 4, orig.ID))
	assert.Equal(t, orig, s.Sequence(week, 4)[0])
}

func TestToggleTask_MonthlyIgnoresWeekData(t *testing.T) {
	state := emptyState()
	state.WeekData[week] = domain.WeekBucket{}.WithDay(0, []domain.TaskInstance{
		{ID: "xyz", Text: "week copy", Zone: domain.ZoneKitchen, Energy: domain.EnergyLow},
	})
	state.MonthlyData["2025-06"] = []domain.TaskInstance{
		{ID: "xyz", Text: "month copy", Zone: domain.ZoneKitchen, Energy: domain.EnergyLow},
	}
	s := New(context.Background(), &testutil.RecordingPersister{Initial: state})
	ctx := context.Background()

	require.NoError(t, s.SetViewMode(ctx, domain.ViewMonthly))
	require.True(t, s.ToggleTask(ctx, week, 0, "xyz"))

	assert.True(t, s.MonthlyData()["2025-06"][0].Completed)
	assert.False(t, s.WeekData()[week].Days[0][0].Completed)
}

func TestMisses_AreSilentNoOps(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	before := s.State()
	existing := s.Sequence(week, 0)[0].ID

	cases := []struct {
		name string
		key  string
		day  int
		id   string
	}{
		{"unknown id", week, 0, "ghost"},
		{"absent week", "2031-01-06", 0, existing},
		{"malformed key", "next tuesday", 0, existing},
		{"day out of range", week, 9, existing},
		{"wrong day", week, 1, existing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, s.ToggleTask(ctx, tc.key, tc.day, tc.id))
			assert.False(t, s.RemoveTask(ctx, tc.key, tc.day, tc.id))
			found, err := s.UpdateTask(ctx, tc.key, tc.day, tc.id, domain.TaskPatch{Text: domain.Ptr("x")})
			assert.NoError(t, err)
			assert.False(t, found)
		})
	}
	assert.Equal(t, before, s.State())
	assert.Empty(t, p.Saved())
}

func TestRemoveTask_IdempotentAndOrderPreserving(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seq := s.Sequence(week, 0)
	require.GreaterOrEqual(t, len(seq), 3)
	victim := seq[1].ID
	want := append([]string{seq[0].ID}, ids(seq[2:])...)

	require.True(t, s.RemoveTask(ctx, week, 0, victim))
	assert.Equal(t, want, ids(s.Sequence(week, 0)))

	assert.False(t, s.RemoveTask(ctx, week, 0, victim))
	assert.Equal(t, want, ids(s.Sequence(week, 0)))
}

func TestRemoveTask_LastTaskLeavesEmptySequence(t *testing.T) {
	s := newEmptyStore(t)
	ctx := context.Background()
	task, err := s.AddTask(ctx, week, 2, testutil.NewTestDraft("Only"))
	require.NoError(t, err)

	require.True(t, s.RemoveTask(ctx, week, 2, task.ID))
	w, ok := s.WeekData()[week]
	require.True(t, ok)
	assert.NotNil(t, w.Days[2])
	assert.Empty(t, w.Days[2])
}

func TestUpdateTask_MergesWithoutMovingOrRenaming(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seq := s.Sequence(week, 1)
	target := seq[len(seq)-1]
	found, err := s.UpdateTask(ctx, week, 1, target.ID, domain.TaskPatch{
		Text: domain.Ptr("Scrub tub"),
		Note: domain.Ptr("use the soft brush"),
		Zone: domain.Ptr(domain.ZoneBathroom),
	})
	require.NoError(t, err)
	require.True(t, found)

	after := s.Sequence(week, 1)
	require.Equal(t, ids(seq), ids(after))
	got := after[len(after)-1]
	assert.Equal(t, target.ID, got.ID)
	assert.Equal(t, "Scrub tub", got.Text)
	assert.Equal(t, "use the soft brush", got.Note)
	assert.Equal(t, target.Energy, got.Energy)
	assert.Equal(t, seq[:len(seq)-1], after[:len(after)-1], "other tasks untouched")
}

func TestUpdateTask_RejectsInvalidPatch(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	target := s.Sequence(week, 0)[0]

	found, err := s.UpdateTask(ctx, week, 0, target.ID, domain.TaskPatch{Energy: domain.Ptr(domain.Energy("extreme"))})
	assert.True(t, found)
	assert.ErrorIs(t, err, ErrInvalidTask)
	assert.Equal(t, target, s.Sequence(week, 0)[0])
	assert.Empty(t, p.Saved())
}

func TestMutations_CopyOnWrite(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, err := s.AddTask(ctx, "2025-06-09", 0, testutil.NewTestDraft("Next week"))
	require.NoError(t, err)

	before := s.State()
	beforeDay0 := before.WeekData[week].Days[0]
	beforeMonth := before.MonthlyData["2025-06"]

	target := beforeDay0[0]
	require.True(t, s.ToggleTask(ctx, week, 0, target.ID))

	assert.Equal(t, target.Completed, before.WeekData[week].Days[0][0].Completed, "old snapshot unchanged")
	assert.NotEqual(t, target.Completed, s.WeekData()[week].Days[0][0].Completed)

	after := s.State()
	assert.Same(t, &before.WeekData[week].Days[1][0], &after.WeekData[week].Days[1][0], "sibling day shares storage")
	assert.Same(t, &before.WeekData["2025-06-09"].Days[0][0], &after.WeekData["2025-06-09"].Days[0][0], "sibling week shares storage")
	assert.Same(t, &beforeMonth[0], &after.MonthlyData["2025-06"][0], "untouched maps are not copied")
}

func TestAutoFill_ReplacesBucketForCurrentMode(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := s.Sequence(week, 0)[0]
	require.True(t, s.ToggleTask(ctx, week, 0, first.ID))
	_, err := s.AddTask(ctx, week, 6, testutil.NewTestDraft("Sunday extra"))
	require.NoError(t, err)
	monthBefore := s.MonthlyData()["2025-06"]

	require.NoError(t, s.AutoFill(ctx, week))
	w := s.Week(week)
	for _, d := range w.Days {
		for _, task := range d {
			assert.False(t, task.Completed)
			assert.NotEqual(t, "Sunday extra", task.Text)
		}
	}
	assert.NotContains(t, ids(w.Days[0]), first.ID, "fill issues fresh ids")
	assert.Equal(t, monthBefore, s.MonthlyData()["2025-06"])

	require.NoError(t, s.SetViewMode(ctx, domain.ViewYearly))
	require.NoError(t, s.AutoFill(ctx, "2026-01-05"))
	assert.Len(t, s.YearlyData()["2026"], len(s.Catalog().ByFrequency(domain.FrequencyYearly)))
	assert.Contains(t, s.YearlyData(), "2025")
}

func TestAutoFill_InvalidKey(t *testing.T) {
	s, p := newTestStore(t)
	assert.ErrorIs(t, s.AutoFill(context.Background(), "2025/06/02"), ErrInvalidKey)
	assert.Empty(t, p.Saved())
}

func TestProgress(t *testing.T) {
	s := newEmptyStore(t)
	ctx := context.Background()

	assert.Equal(t, domain.Progress{}, s.Progress(week, 0))
	a, err := s.AddTask(ctx, week, 0, testutil.NewTestDraft("a"))
	require.NoError(t, err)
	_, err = s.AddTask(ctx, week, 0, testutil.NewTestDraft("b"))
	require.NoError(t, err)
	s.ToggleTask(ctx, week, 0, a.ID)

	assert.Equal(t, domain.Progress{Completed: 1, Total: 2}, s.Progress(week, 0))
}
