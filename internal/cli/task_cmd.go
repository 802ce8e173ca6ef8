package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		day       int
		zone      domain.Zone
		energy    domain.Energy
		frequency domain.Frequency
		note      string
		why       string
		essential bool
	)

	cmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add a task to the current plan",
		Example: `  choreplan add "Descale the kettle" --day wed --energy low
  choreplan mode monthly && choreplan add "Wash windows" --zone living`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.TaskDraft{
				Text:        strings.Join(args, " "),
				Zone:        zone,
				Energy:      energy,
				Frequency:   frequency,
				Why:         why,
				Note:        note,
				IsEssential: essential,
			}
			if draft.Zone == "" {
				draft.Zone = defaultZone(app.Store.ViewMode(), day)
			}
			if draft.Frequency == "" {
				draft.Frequency = defaultFrequency(app.Store.ViewMode())
			}

			key := app.Store.CurrentWeekStart()
			task, err := app.Store.AddTask(cmd.Context(), key, day, draft)
			if err != nil {
				return err
			}
			pos := len(app.Store.Sequence(key, day))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Added %s to %s as #%d.\n", formatter.Bold(task.Text), targetLabel(app, day), pos)
			warnUnsaved(w, app)
			return nil
		},
	}

	fs := cmd.Flags()
	dayFlag(fs, app, &day)
	fs.VarP(newEnumValue(&zone, "", domain.Zones, "zone"), "zone", "z",
		"Zone: "+joinEnum(domain.Zones)+" (default: the day's theme)")
	fs.VarP(newEnumValue(&energy, domain.EnergyLow, domain.Energies, "energy"), "energy", "e",
		"Energy: "+joinEnum(domain.Energies))
	fs.Var(newEnumValue(&frequency, "", domain.Frequencies, "frequency"), "frequency",
		"Frequency: "+joinEnum(domain.Frequencies)+" (default: follows the view mode)")
	fs.StringVarP(&note, "note", "n", "", "Free-text note")
	fs.StringVar(&why, "why", "", "Why this task matters")
	fs.BoolVar(&essential, "essential", false, "List under the daily essentials")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var (
		day       int
		text      string
		zone      domain.Zone
		energy    domain.Energy
		frequency domain.Frequency
		note      string
		why       string
		essential bool
	)

	cmd := &cobra.Command{
		Use:   "edit REF",
		Short: "Change fields of a planned task",
		Long:  "Change fields of a planned task. Only the flags given are changed.\n\n" + taskRefHelp,
		Example: `  choreplan edit 3 --note "use the blue cloth"
  choreplan edit 2 --day fri --energy high`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			fs := cmd.Flags()
			if fs.Changed("text") {
				patch.Text = &text
			}
			if fs.Changed("zone") {
				patch.Zone = &zone
			}
			if fs.Changed("energy") {
				patch.Energy = &energy
			}
			if fs.Changed("frequency") {
				patch.Frequency = &frequency
			}
			if fs.Changed("note") {
				patch.Note = &note
			}
			if fs.Changed("why") {
				patch.Why = &why
			}
			if fs.Changed("essential") {
				patch.IsEssential = &essential
			}
			if patch.Empty() {
				return fmt.Errorf("nothing to change (use --text, --zone, --energy, --frequency, --note, --why or --essential)")
			}

			key := app.Store.CurrentWeekStart()
			task, err := resolveTaskRef(app.Store.Sequence(key, day), args[0])
			if err != nil {
				return err
			}
			if _, err := app.Store.UpdateTask(cmd.Context(), key, day, task.ID, patch); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Updated %s.\n", formatter.Bold(patch.Apply(task).Text))
			warnUnsaved(w, app)
			return nil
		},
	}

	fs := cmd.Flags()
	dayFlag(fs, app, &day)
	fs.StringVarP(&text, "text", "t", "", "New task text")
	fs.VarP(newEnumValue(&zone, "", domain.Zones, "zone"), "zone", "z", "Zone: "+joinEnum(domain.Zones))
	fs.VarP(newEnumValue(&energy, "", domain.Energies, "energy"), "energy", "e", "Energy: "+joinEnum(domain.Energies))
	fs.Var(newEnumValue(&frequency, "", domain.Frequencies, "frequency"), "frequency", "Frequency: "+joinEnum(domain.Frequencies))
	fs.StringVarP(&note, "note", "n", "", "Free-text note (empty clears it)")
	fs.StringVar(&why, "why", "", "Why this task matters")
	fs.BoolVar(&essential, "essential", false, "List under the daily essentials")
	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:     "toggle REF...",
		Aliases: []string{"done", "check"},
		Short:   "Flip tasks between done and not done",
		Long:    "Flip tasks between done and not done.\n\n" + taskRefHelp,
		Example: `  choreplan toggle 1 2
  choreplan toggle 4 --day sat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := app.Store.CurrentWeekStart()
			tasks, err := resolveTaskRefs(app.Store.Sequence(key, day), args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range tasks {
				if app.Store.ToggleTask(cmd.Context(), key, day, t.ID) {
					fmt.Fprintf(w, "%s %s\n", formatter.Checkbox(!t.Completed), t.Text)
				}
			}
			writeDayProgress(w, app, day)
			warnUnsaved(w, app)
			return nil
		},
	}

	dayFlag(cmd.Flags(), app, &day)
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:     "rm REF...",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove tasks from the current plan",
		Long:    "Remove tasks from the current plan.\n\n" + taskRefHelp,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := app.Store.CurrentWeekStart()
			tasks, err := resolveTaskRefs(app.Store.Sequence(key, day), args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range tasks {
				if app.Store.RemoveTask(cmd.Context(), key, day, t.ID) {
					fmt.Fprintf(w, "Removed %s.\n", formatter.Bold(t.Text))
				}
			}
			warnUnsaved(w, app)
			return nil
		},
	}

	dayFlag(cmd.Flags(), app, &day)
	return cmd
}

func newPickCmd(app *App) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "pick TEMPLATE-ID",
		Short: "Add a task from the library to the current plan",
		Long: `Add a task from the library to the current plan.

List the library with "choreplan bank".`,
		Example: `  choreplan pick w3 --day fri`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, ok := catalog.Find(app.Store.TaskBank(), args[0])
			if !ok {
				return fmt.Errorf("no library task %q (see 'choreplan bank --all')", args[0])
			}
			key := app.Store.CurrentWeekStart()
			task, err := app.Store.AddTask(cmd.Context(), key, day, tmpl.Draft())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Added %s to %s.\n", formatter.Bold(task.Text), targetLabel(app, day))
			warnUnsaved(w, app)
			return nil
		},
	}

	dayFlag(cmd.Flags(), app, &day)
	return cmd
}

// targetLabel names the bucket a command addressed, e.g. "Wed Jun 4".
func targetLabel(app *App, day int) string {
	key := app.Store.CurrentWeekStart()
	switch app.Store.ViewMode() {
	case domain.ViewMonthly:
		return formatter.MonthTitle(key)
	case domain.ViewYearly:
		return formatter.YearTitle(key)
	}
	date, err := domain.DayDate(key, day)
	if err != nil {
		return key
	}
	return date.Format("Mon Jan 2")
}

func writeDayProgress(w io.Writer, app *App, day int) {
	p := app.Store.Progress(app.Store.CurrentWeekStart(), day)
	fmt.Fprintf(w, "%s %s\n", formatter.Dim(targetLabel(app, day)), formatter.RenderProgress(p, 12))
}

func defaultZone(mode domain.ViewMode, day int) domain.Zone {
	if mode != domain.ViewWeekly {
		return domain.ZoneDeep
	}
	if z := catalog.DayThemes[day].Zone; z != "" {
		return z
	}
	return domain.ZoneKitchen
}

func defaultFrequency(mode domain.ViewMode) domain.Frequency {
	switch mode {
	case domain.ViewMonthly:
		return domain.FrequencyMonthly
	case domain.ViewYearly:
		return domain.FrequencyYearly
	}
	return domain.FrequencyWeekly
}
