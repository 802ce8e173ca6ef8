package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// plannerView is the home view: the current week with a day selector, or
// the current month or year as a flat list.
type plannerView struct {
	state  *SharedState
	cursor int
}

func newPlannerView(state *SharedState) *plannerView {
	return &plannerView{state: state}
}

func (v *plannerView) ID() ViewID { return ViewPlanner }

func (v *plannerView) Title() string {
	switch v.store().ViewMode() {
	case domain.ViewMonthly:
		return "Monthly"
	case domain.ViewYearly:
		return "Yearly"
	}
	return "Weekly"
}

func (v *plannerView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "library")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "autofill")),
	}
	if v.store().ViewMode() == domain.ViewWeekly {
		bindings = append(bindings, key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "day")))
	}
	return append(bindings,
		key.NewBinding(key.WithKeys("n", "p"), key.WithHelp("n/p", "week")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
}

func (v *plannerView) Init() tea.Cmd { return nil }

func (v *plannerView) store() *planner.Store { return v.state.App.Store }

func (v *plannerView) tasks() []domain.TaskInstance {
	s := v.store()
	return s.Sequence(s.CurrentWeekStart(), v.state.Day)
}

func (v *plannerView) selected() (domain.TaskInstance, bool) {
	tasks := v.tasks()
	if v.cursor < 0 || v.cursor >= len(tasks) {
		return domain.TaskInstance{}, false
	}
	return tasks[v.cursor], true
}

func (v *plannerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	ctx := context.Background()
	app := v.state.App
	s := app.Store
	wk := s.CurrentWeekStart()
	weekly := s.ViewMode() == domain.ViewWeekly

	var cmd tea.Cmd
	switch keyMsg.String() {
	case "up", "k":
		v.cursor--
	case "down", "j":
		v.cursor++
	case "left", "h":
		if weekly {
			v.state.Day = (v.state.Day + domain.DaysPerWeek - 1) % domain.DaysPerWeek
			v.cursor = 0
		}
	case "right", "l":
		if weekly {
			v.state.Day = (v.state.Day + 1) % domain.DaysPerWeek
			v.cursor = 0
		}
	case " ", "space", "x", "enter":
		if t, ok := v.selected(); ok {
			s.ToggleTask(ctx, wk, v.state.Day, t.ID)
		}
	case "d", "delete":
		if t, ok := v.selected(); ok && s.RemoveTask(ctx, wk, v.state.Day, t.ID) {
			cmd = flash(fmt.Sprintf("Removed %q.", t.Text))
		}
	case "a":
		cmd = addTaskWizard(v.state)
	case "e":
		if t, ok := v.selected(); ok {
			cmd = editTaskWizard(v.state, t)
		}
	case "f":
		cmd = fillWizard(v.state)
	case "b":
		cmd = pushView(newBankView(v.state))
	case "n", "]":
		s.NextWeek(ctx)
	case "p", "[":
		s.PrevWeek(ctx)
	case "m":
		cmd = switchMode(ctx, s, nextMode(s.ViewMode()))
		v.cursor = 0
	case "t":
		s.GoToWeek(ctx, app.now())
		v.state.Day = app.today()
		v.cursor = 0
	}
	v.clampCursor()
	return v, cmd
}

func (v *plannerView) clampCursor() {
	n := len(v.tasks())
	v.cursor = min(v.cursor, n-1)
	v.cursor = max(v.cursor, 0)
}

// switchMode changes the view mode, reporting a rejected mode in the status bar.
func switchMode(ctx context.Context, s *planner.Store, mode domain.ViewMode) tea.Cmd {
	if err := s.SetViewMode(ctx, mode); err != nil {
		return flash("Could not switch view: " + err.Error())
	}
	return nil
}

func nextMode(m domain.ViewMode) domain.ViewMode {
	for i, mode := range domain.ViewModes {
		if mode == m {
			return domain.ViewModes[(i+1)%len(domain.ViewModes)]
		}
	}
	return domain.ViewWeekly
}

func (v *plannerView) View() string {
	v.clampCursor()
	s := v.store()
	key := s.CurrentWeekStart()

	var b strings.Builder
	switch s.ViewMode() {
	case domain.ViewMonthly:
		v.writeFlat(&b, formatter.MonthTitle(key))
	case domain.ViewYearly:
		v.writeFlat(&b, formatter.YearTitle(key))
	default:
		v.writeWeek(&b, key)
	}
	return b.String()
}

func (v *plannerView) writeWeek(b *strings.Builder, key string) {
	s := v.store()
	start, err := domain.ParseWeekKey(key)
	if err != nil {
		b.WriteString(formatter.StyleRed.Render(err.Error()))
		return
	}

	week := s.Week(key)
	var total domain.Progress
	for _, d := range week.Days {
		total = total.Add(domain.CountProgress(d))
	}
	fmt.Fprintf(b, "%s  %s\n\n", formatter.Header("Week of "+formatter.WeekRange(start)), formatter.RenderProgress(total, 12))

	tabs := make([]string, domain.DaysPerWeek)
	for i := range tabs {
		tabs[i] = dayTab(i, start.AddDate(0, 0, i).Day(), domain.CountProgress(week.Days[i]), i == v.state.Day)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	day := v.state.Day
	theme := catalog.DayThemes[day]
	fmt.Fprintf(b, "%s  %s  %s\n",
		formatter.StyleBold.Render(start.AddDate(0, 0, day).Format("Monday, Jan 2")),
		formatter.ZoneStyle(theme.Zone).Render(theme.Label),
		formatter.RenderProgress(domain.CountProgress(week.Days[day]), 12),
	)
	v.writeTasks(b, week.Days[day], "Rest day · press a to add a task or f to autofill the week")
}

func (v *plannerView) writeFlat(b *strings.Builder, title string) {
	tasks := v.tasks()
	fmt.Fprintf(b, "%s  %s\n\n", formatter.Header(title), formatter.RenderProgress(domain.CountProgress(tasks), 12))
	v.writeTasks(b, tasks, "No tasks yet · press a to add one, b for the library or f to autofill")
}

func (v *plannerView) writeTasks(b *strings.Builder, tasks []domain.TaskInstance, empty string) {
	if len(tasks) == 0 {
		b.WriteString("  " + formatter.Dim(empty) + "\n")
		return
	}
	for i, t := range tasks {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StylePurple.Render("› ")
		}
		b.WriteString(marker + formatter.TaskLine(i+1, t) + "\n")
	}
}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(formatter.ColorDim)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(formatter.ColorHeader).Bold(true).Underline(true)
)

func dayTab(i, date int, p domain.Progress, active bool) string {
	label := fmt.Sprintf("%s %d", domain.DayLabels[i], date)
	if p.Done() {
		label += " ✓"
	}
	if active {
		return activeTabStyle.Render(label)
	}
	return tabStyle.Render(label)
}
