package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/choreplan/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// taskFormValues backs the add and edit forms. It must outlive the form,
// so it is always heap allocated.
type taskFormValues struct {
	Text   string
	Zone   domain.Zone
	Energy domain.Energy
	Note   string
}

func newTaskForm(v *taskFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("e.g. Wipe the fridge shelves").
				Value(&v.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("task text is required")
					}
					return nil
				}),
			huh.NewSelect[domain.Zone]().
				Title("Zone").
				Options(enumOptions(domain.Zones, domain.Zone.Name)...).
				Value(&v.Zone),
			huh.NewSelect[domain.Energy]().
				Title("Energy").
				Options(enumOptions(domain.Energies, func(e domain.Energy) string { return string(e) })...).
				Value(&v.Energy),
			huh.NewInput().
				Title("Note").
				Value(&v.Note),
		),
	)
}

func enumOptions[T ~string](vals []T, label func(T) string) []huh.Option[T] {
	opts := make([]huh.Option[T], len(vals))
	for i, v := range vals {
		opts[i] = huh.NewOption(label(v), v)
	}
	return opts
}

// addTaskWizard collects a new task for the selected day.
func addTaskWizard(state *SharedState) tea.Cmd {
	mode := state.App.Store.ViewMode()
	vals := &taskFormValues{Zone: defaultZone(mode, state.Day), Energy: domain.EnergyLow}
	return startWizard("Add task", newTaskForm(vals), func() tea.Cmd {
		return addTaskDone(state, vals)
	})
}

func addTaskDone(state *SharedState, vals *taskFormValues) tea.Cmd {
	app := state.App
	draft := domain.TaskDraft{
		Text:      strings.TrimSpace(vals.Text),
		Zone:      vals.Zone,
		Energy:    vals.Energy,
		Frequency: defaultFrequency(app.Store.ViewMode()),
		Note:      vals.Note,
	}
	task, err := app.Store.AddTask(context.Background(), app.Store.CurrentWeekStart(), state.Day, draft)
	if err != nil {
		return flash("Could not add task: " + err.Error())
	}
	return flash(fmt.Sprintf("Added %q to %s.", task.Text, targetLabel(app, state.Day)))
}

// editTaskWizard edits text, zone, energy and note of task.
func editTaskWizard(state *SharedState, task domain.TaskInstance) tea.Cmd {
	vals := &taskFormValues{Text: task.Text, Zone: task.Zone, Energy: task.Energy, Note: task.Note}
	return startWizard("Edit task", newTaskForm(vals), func() tea.Cmd {
		return editTaskDone(state, task.ID, vals)
	})
}

func editTaskDone(state *SharedState, id string, vals *taskFormValues) tea.Cmd {
	app := state.App
	text := strings.TrimSpace(vals.Text)
	patch := domain.TaskPatch{Text: &text, Zone: &vals.Zone, Energy: &vals.Energy, Note: &vals.Note}
	found, err := app.Store.UpdateTask(context.Background(), app.Store.CurrentWeekStart(), state.Day, id, patch)
	switch {
	case err != nil:
		return flash("Could not update task: " + err.Error())
	case !found:
		return flash("That task is gone.")
	}
	return flash(fmt.Sprintf("Updated %q.", text))
}

// fillWizard asks before replacing the current bucket with the defaults.
func fillWizard(state *SharedState) tea.Cmd {
	var ok bool
	target := fillTarget(state.App)
	form := huh.NewForm(huh.NewGroup(confirmField(
		fmt.Sprintf("Replace %s with the default routine?", target),
		"Every task already planned there will be discarded.",
		&ok,
	)))
	return startWizard("Autofill", form, func() tea.Cmd {
		if !ok {
			return flash("Cancelled.")
		}
		return fillDone(state, target)
	})
}

func fillDone(state *SharedState, target string) tea.Cmd {
	app := state.App
	if err := app.Store.AutoFill(context.Background(), app.Store.CurrentWeekStart()); err != nil {
		return flash("Autofill failed: " + err.Error())
	}
	return flash("Filled " + target + " with the default routine.")
}
