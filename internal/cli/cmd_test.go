package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/planner"
	"github.com/alexanderramin/choreplan/internal/storage"
	"github.com/alexanderramin/choreplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The test clock sits on Wednesday 2025-06-04, so "today" is day slot 2.
const (
	week = "2025-06-02"
	wed  = 2
)

// testApp wires an App to an in-memory store seeded with the default week.
func testApp(t *testing.T) (*App, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	clock := testutil.FixedClock(2025, 6, 4)
	store := planner.New(context.Background(), mem,
		planner.WithClock(clock),
		planner.WithIDSource(testutil.NewSeqIDs("t")),
	)
	return &App{
		Store:   store,
		Storage: mem,
		Now:     clock,
		Confirm: func(string, string) (bool, error) {
			t.Fatal("unexpected confirmation prompt")
			return false, nil
		},
		RunTUI: func(*App) error {
			t.Fatal("unexpected TUI launch")
			return nil
		},
	}, mem
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func texts(tasks []domain.TaskInstance) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

// --- Root and navigation ---

func TestRootCmd_NonInteractiveShowsWeek(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK OF JUN 2 – JUN 8, 2025")
	assert.Contains(t, out, "Dust all surfaces")
}

func TestRootCmd_InteractiveOpensTUI(t *testing.T) {
	app, _ := testApp(t)
	app.Interactive = true
	launched := false
	app.RunTUI = func(*App) error { launched = true; return nil }

	_, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.True(t, launched)
}

func TestShowCmd_WeekFlag(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "show", "--week", "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-29", app.Store.CurrentWeekStart())
	assert.Contains(t, out, "Rest day")

	_, err = executeCmd(t, app, "show", "--week", "today")
	require.NoError(t, err)
	assert.Equal(t, week, app.Store.CurrentWeekStart())

	_, err = executeCmd(t, app, "show", "--week", "next tuesday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestNextPrevCmd(t *testing.T) {
	app, mem := testApp(t)

	out, err := executeCmd(t, app, "next")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", app.Store.CurrentWeekStart())
	assert.Contains(t, out, "WEEK OF JUN 9")

	_, err = executeCmd(t, app, "prev")
	require.NoError(t, err)
	assert.Equal(t, week, app.Store.CurrentWeekStart())

	desc, err := mem.Describe(context.Background())
	require.NoError(t, err)
	require.Len(t, desc.Slots, 1)
	assert.Equal(t, 2, desc.Slots[0].Revision, "each navigation is saved")
}

func TestModeCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "mode", "monthly")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewMonthly, app.Store.ViewMode())
	assert.Contains(t, out, "JUNE 2025")
	assert.Contains(t, out, "Test smoke & CO alarms")

	out, err = executeCmd(t, app, "mode", "y")
	require.NoError(t, err)
	assert.Contains(t, out, "YEAR 2025")

	_, err = executeCmd(t, app, "mode", "daily")
	require.Error(t, err)
	assert.Equal(t, domain.ViewYearly, app.Store.ViewMode())
}

// --- Task commands ---

func TestAddCmd_DefaultsToTodayAndDayTheme(t *testing.T) {
	app, _ := testApp(t)
	before := len(app.Store.Sequence(week, wed))

	out, err := executeCmd(t, app, "add", "Descale", "the", "kettle", "--energy", "high", "--note", "vinegar")
	require.NoError(t, err)
	assert.Contains(t, out, "Wed Jun 4")

	seq := app.Store.Sequence(week, wed)
	require.Len(t, seq, before+1)
	got := seq[len(seq)-1]
	assert.Equal(t, "Descale the kettle", got.Text)
	assert.Equal(t, domain.ZoneLiving, got.Zone, "Wednesday is the dusting day")
	assert.Equal(t, domain.EnergyHigh, got.Energy)
	assert.Equal(t, domain.FrequencyWeekly, got.Frequency)
	assert.Equal(t, "vinegar", got.Note)
	assert.False(t, got.Completed)
}

func TestAddCmd_ExplicitDayAndFlatModes(t *testing.T) {
	app, _ := testApp(t)

	before := texts(app.Store.Sequence(week, 6))
	require.NotEmpty(t, before, "essentials are planned every day")

	_, err := executeCmd(t, app, "add", "Sort the shed", "--day", "sun", "--zone", "deep")
	require.NoError(t, err)
	sun := app.Store.Sequence(week, 6)
	assert.Equal(t, append(before, "Sort the shed"), texts(sun))
	assert.Equal(t, domain.ZoneDeep, sun[len(sun)-1].Zone)

	_, err = executeCmd(t, app, "mode", "yearly")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "add", "Service the boiler")
	require.NoError(t, err)
	year := app.Store.Year(week)
	assert.Equal(t, "Service the boiler", year[len(year)-1].Text)
	assert.Equal(t, domain.FrequencyYearly, year[len(year)-1].Frequency)
}

func TestAddCmd_RejectsBadFlags(t *testing.T) {
	app, _ := testApp(t)
	before := app.Store.State()

	_, err := executeCmd(t, app, "add", "Mop", "--zone", "garage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")

	_, err = executeCmd(t, app, "add", "Mop", "--day", "someday")
	require.Error(t, err)

	_, err = executeCmd(t, app, "add", "   ")
	require.ErrorIs(t, err, planner.ErrInvalidTask)

	assert.Equal(t, before, app.Store.State())
}

func TestToggleCmd(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "toggle", "1", "2")
	require.NoError(t, err)
	seq := app.Store.Sequence(week, wed)
	assert.True(t, seq[0].Completed)
	assert.True(t, seq[1].Completed)
	assert.False(t, seq[2].Completed)

	out, err := executeCmd(t, app, "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1/6")
	assert.False(t, app.Store.Sequence(week, wed)[0].Completed)
}

func TestToggleCmd_BadRefChangesNothing(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "toggle", "1", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no task #99")
	assert.False(t, app.Store.Sequence(week, wed)[0].Completed)
}

func TestRemoveCmd_ByIDAndPosition(t *testing.T) {
	app, _ := testApp(t)
	seq := app.Store.Sequence(week, wed)

	_, err := executeCmd(t, app, "rm", seq[5].ID, "1")
	require.NoError(t, err)
	assert.Equal(t, texts(seq[1:5]), texts(app.Store.Sequence(week, wed)))
}

func TestEditCmd(t *testing.T) {
	app, _ := testApp(t)
	orig := app.Store.Sequence(week, wed)[0]

	_, err := executeCmd(t, app, "edit", "1", "--note", "use the blue cloth", "--energy", "high")
	require.NoError(t, err)
	got := app.Store.Sequence(week, wed)[0]
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Text, got.Text)
	assert.Equal(t, "use the blue cloth", got.Note)
	assert.Equal(t, domain.EnergyHigh, got.Energy)

	_, err = executeCmd(t, app, "edit", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")

	_, err = executeCmd(t, app, "edit", "1", "--text", "")
	require.ErrorIs(t, err, planner.ErrInvalidTask)
}

func TestPickCmd(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "pick", "w9", "--day", "sat")
	require.NoError(t, err)
	sat := app.Store.Sequence(week, 5)
	last := sat[len(sat)-1]
	assert.Equal(t, "Sort mail & pay bills", last.Text)
	assert.NotEqual(t, "w9", last.ID, "instances never reuse template ids")

	_, err = executeCmd(t, app, "pick", "nope")
	require.Error(t, err)
}

// --- Plan commands ---

func TestFillCmd_NeedsConfirmation(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "rm", "1", "--day", "mon")
	require.NoError(t, err)
	before := app.Store.State()

	_, err = executeCmd(t, app, "fill")
	require.ErrorIs(t, err, errNeedsConfirmation)

	app.Interactive = true
	var asked string
	app.Confirm = func(title, _ string) (bool, error) { asked = title; return false, nil }
	out, err := executeCmd(t, app, "fill")
	require.NoError(t, err)
	assert.Contains(t, asked, "the week of Jun 2 – Jun 8, 2025")
	assert.Contains(t, out, "Cancelled.")
	assert.Equal(t, before, app.Store.State())
}

func TestFillCmd_Yes(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "rm", "1", "2", "3", "--day", "mon")
	require.NoError(t, err)
	require.Len(t, app.Store.Sequence(week, 0), 4)

	out, err := executeCmd(t, app, "fill", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Filled the week of")
	assert.Len(t, app.Store.Sequence(week, 0), 7)
}

func TestBankCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "bank")
	require.NoError(t, err)
	assert.Contains(t, out, "Dust all surfaces")
	assert.NotContains(t, out, "Flush water heater")

	out, err = executeCmd(t, app, "bank", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Flush water heater")
}

func TestPrintCmd_Raw(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "print", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# Weekly Cleaning Plan")
	assert.Contains(t, out, "- [ ] Dust all surfaces")
}

// --- Export / import ---

func TestExportImportCmd_RoundTrip(t *testing.T) {
	app, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "backup.yaml")

	_, err := executeCmd(t, app, "toggle", "1")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "export", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "currentWeekStart:")
	assert.Contains(t, string(data), "2025-06-02")
	saved := app.Store.State()

	_, err = executeCmd(t, app, "rm", "1", "2", "3")
	require.NoError(t, err)
	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 weeks")
	assert.Equal(t, saved.WeekData, app.Store.State().WeekData)
}

func TestExportCmd_Stdout(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": 1`)
	assert.Contains(t, out, `"exportedAt": "2025-06-04T09:00:00Z"`)
}

func TestImportCmd_RejectsBadDocument(t *testing.T) {
	app, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	before := app.Store.State()

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	var ierr *planner.ImportError
	require.True(t, errors.As(err, &ierr))
	assert.Contains(t, err.Error(), "import failed")
	assert.Equal(t, before, app.Store.State())
}

// --- Status / reset / version ---

func TestStatusCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "memory")
	assert.Contains(t, out, "Nothing saved yet.")

	_, err = executeCmd(t, app, "next")
	require.NoError(t, err)
	out, err = executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.NotContains(t, out, "Nothing saved yet.")
	assert.Contains(t, out, "2025-06-09")
}

func TestResetCmd(t *testing.T) {
	app, mem := testApp(t)
	_, err := executeCmd(t, app, "next")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "reset")
	require.ErrorIs(t, err, errNeedsConfirmation)

	out, err := executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved plan deleted")
	_, err = mem.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoState)
}

func TestVersionCmd(t *testing.T) {
	app, _ := testApp(t)
	app.Build = BuildInfo{Version: "1.4.0", Commit: "abc123"}
	out, err := executeCmd(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.4.0")
	assert.Contains(t, out, "abc123")
}

// --- Save failures ---

func TestCommands_WarnWhenSaveFails(t *testing.T) {
	app, _ := testApp(t)
	app.Store = planner.New(context.Background(),
		&testutil.FailingPersister{LoadErr: storage.ErrNoState, SaveErr: errors.New("disk full")},
		planner.WithClock(app.Now),
	)

	out, err := executeCmd(t, app, "toggle", "1")
	require.NoError(t, err, "a failed save does not fail the command")
	assert.Contains(t, out, "changes were not saved")
	assert.Contains(t, out, "disk full")
	assert.True(t, app.Store.Sequence(week, wed)[0].Completed)
}
