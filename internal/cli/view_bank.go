package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// bankView lists library templates suited to the current view mode.
// Enter adds the highlighted template to the selected day.
type bankView struct {
	state     *SharedState
	groups    []catalog.ZoneGroup
	templates []domain.TaskTemplate // groups flattened, in display order
	cursor    int
}

func newBankView(state *SharedState) *bankView {
	s := state.App.Store
	v := &bankView{state: state}
	for _, g := range catalog.ByZone(catalog.Suggestions(s.TaskBank(), s.ViewMode())) {
		v.groups = append(v.groups, g)
		v.templates = append(v.templates, g.Templates...)
	}
	return v
}

func (v *bankView) ID() ViewID    { return ViewBank }
func (v *bankView) Title() string { return "Library" }
func (v *bankView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to plan")),
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
	}
}

func (v *bankView) Init() tea.Cmd { return nil }

func (v *bankView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		v.cursor = max(v.cursor-1, 0)
	case "down", "j":
		v.cursor = min(v.cursor+1, max(len(v.templates)-1, 0))
	case "enter", " ", "space":
		if v.cursor < len(v.templates) {
			return v, v.pick(v.templates[v.cursor])
		}
	}
	return v, nil
}

func (v *bankView) pick(t domain.TaskTemplate) tea.Cmd {
	app := v.state.App
	task, err := app.Store.AddTask(context.Background(), app.Store.CurrentWeekStart(), v.state.Day, t.Draft())
	if err != nil {
		return flash("Could not add task: " + err.Error())
	}
	return tea.Batch(popView(), flash(fmt.Sprintf("Added %q to %s.", task.Text, targetLabel(app, v.state.Day))))
}

func (v *bankView) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", formatter.Header("Library"), formatter.Dim("adding to "+targetLabel(v.state.App, v.state.Day)))
	if len(v.templates) == 0 {
		b.WriteString("  " + formatter.Dim("The library has nothing for this view.") + "\n")
		return b.String()
	}

	i := 0
	for _, g := range v.groups {
		b.WriteString(formatter.ZoneStyle(g.Zone).Bold(true).Render(g.Zone.Name()) + "\n")
		for _, t := range g.Templates {
			marker := "  "
			if i == v.cursor {
				marker = formatter.StylePurple.Render("› ")
			}
			fmt.Fprintf(&b, "%s%s  %s  %s\n", marker, t.Text, formatter.EnergyIndicator(t.Energy), formatter.Dim(string(t.Frequency)))
			i++
		}
	}
	return b.String()
}
