package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return &TestDriver{Driver: teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

func (d *TestDriver) Day() int      { return d.appModel().state.Day }
func (d *TestDriver) Flash() string { return d.appModel().flash }

func TestTUI_StartsOnTodayInWeeklyView(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewPlanner, d.ActiveViewID())
	assert.Equal(t, wed, d.Day())
	view := d.View()
	assert.Contains(t, view, "choreplan")
	assert.Contains(t, view, "WEEK OF JUN 2 – JUN 8, 2025")
	assert.Contains(t, view, "Wednesday, Jun 4")
	assert.Contains(t, view, "Dust all surfaces")
}

func TestTUI_DayNavigationWraps(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("l", "l")
	assert.Equal(t, 4, d.Day())
	assert.Contains(t, d.View(), "Friday, Jun 6")

	d.Press("l", "l", "l")
	assert.Equal(t, 0, d.Day(), "moving right from Sunday wraps to Monday")

	d.Press("h")
	assert.Equal(t, 6, d.Day())
	assert.Contains(t, d.View(), "Sunday, Jun 8")
}

func TestTUI_ToggleAndDelete(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	seq := app.Store.Sequence(week, wed)

	d.Press("j", "x")
	assert.True(t, app.Store.Sequence(week, wed)[1].Completed)
	d.Press("x")
	assert.False(t, app.Store.Sequence(week, wed)[1].Completed)

	d.Press("d")
	assert.Equal(t, texts(append(seq[:1:1], seq[2:]...)), texts(app.Store.Sequence(week, wed)))
	assert.Contains(t, d.Flash(), "Removed")
}

func TestTUI_CursorClampsToSequence(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	for range 20 {
		d.Press("j")
	}
	d.Press("x")
	seq := app.Store.Sequence(week, wed)
	assert.True(t, seq[len(seq)-1].Completed)
}

func TestTUI_WeekAndModeKeys(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("n")
	assert.Equal(t, "2025-06-09", app.Store.CurrentWeekStart())
	d.Press("p", "p")
	assert.Equal(t, "2025-05-26", app.Store.CurrentWeekStart())
	d.Press("t")
	assert.Equal(t, week, app.Store.CurrentWeekStart())

	d.Press("m")
	assert.Equal(t, domain.ViewMonthly, app.Store.ViewMode())
	assert.Contains(t, d.View(), "JUNE 2025")
	d.Press("m")
	assert.Equal(t, domain.ViewYearly, app.Store.ViewMode())
	assert.Contains(t, d.View(), "Flush water heater")
	d.Press("m")
	assert.Equal(t, domain.ViewWeekly, app.Store.ViewMode())
}

func TestSwitchMode_ReportsRejectedMode(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()

	assert.Nil(t, switchMode(ctx, app.Store, domain.ViewMonthly))
	assert.Equal(t, domain.ViewMonthly, app.Store.ViewMode())

	cmd := switchMode(ctx, app.Store, domain.ViewMode("daily"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(flashMsg)
	require.True(t, ok)
	assert.Contains(t, msg.text, "Could not switch view")
	assert.Equal(t, domain.ViewMonthly, app.Store.ViewMode())
}

func TestTUI_FormsCaptureKeysAndEscCancels(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	before := app.Store.State()

	d.Press("a")
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.Type("q")
	assert.False(t, d.Quitting, "q is typed into the form, not a quit")

	d.Press("esc")
	assert.Equal(t, ViewPlanner, d.ActiveViewID())
	assert.Equal(t, "Cancelled.", d.Flash())
	assert.Equal(t, before, app.Store.State())
}

func TestTUI_AddAndEditDone(t *testing.T) {
	app, _ := testApp(t)
	state := &SharedState{App: app, Day: 6}

	before := len(app.Store.Sequence(week, 6))

	addTaskDone(state, &taskFormValues{Text: "  Water the plants ", Zone: domain.ZoneLiving, Energy: domain.EnergyLow})
	sun := app.Store.Sequence(week, 6)
	require.Len(t, sun, before+1)
	added := sun[len(sun)-1]
	assert.Equal(t, "Water the plants", added.Text)
	assert.Equal(t, domain.FrequencyWeekly, added.Frequency)

	editTaskDone(state, added.ID, &taskFormValues{Text: "Water the ferns", Zone: domain.ZoneLiving, Energy: domain.EnergyMedium, Note: "rainwater"})
	sun = app.Store.Sequence(week, 6)
	require.Len(t, sun, before+1)
	got := sun[len(sun)-1]
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "Water the ferns", got.Text)
	assert.Equal(t, domain.EnergyMedium, got.Energy)
	assert.Equal(t, "rainwater", got.Note)
}

func TestTUI_BankPicksIntoSelectedDay(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("h", "h", "h") // Sunday
	before := len(app.Store.Sequence(week, 6))
	d.Press("b")
	require.Equal(t, ViewBank, d.ActiveViewID())
	assert.Contains(t, d.View(), "adding to Sun Jun 8")

	d.Press("enter")
	assert.Equal(t, ViewPlanner, d.ActiveViewID())
	sun := app.Store.Sequence(week, 6)
	require.Len(t, sun, before+1)
	assert.Contains(t, d.Flash(), sun[len(sun)-1].Text)
}

func TestTUI_EscReturnsFromBank(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("b", "esc")
	assert.Equal(t, ViewPlanner, d.ActiveViewID())
}

func TestTUI_Quit(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("q")
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
