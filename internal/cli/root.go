package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/planner"
	"github.com/alexanderramin/choreplan/internal/storage"
	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App holds everything the CLI commands operate on.
type App struct {
	Store   *planner.Store
	Storage storage.Inspector

	ConfigFile  string
	CatalogFile string

	// Interactive is true when stdin and stdout are terminals. It decides
	// whether the bare command opens the TUI and whether prompts may be shown.
	Interactive bool

	Build BuildInfo

	// Now defaults to time.Now.
	Now func() time.Time

	// Confirm asks a yes/no question. Defaults to a huh confirm prompt.
	Confirm func(title, description string) (bool, error)

	// RunTUI starts the full-screen planner. Defaults to runTUI.
	RunTUI func(app *App) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) confirm(title, description string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title, description)
	}
	return confirmPrompt(title, description)
}

// today returns the day slot of the current weekday, Monday first.
func (a *App) today() int {
	return (int(a.now().Weekday()) + 6) % 7
}

// NewRootCmd creates the top-level "choreplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "choreplan",
		Short: "Weekly, monthly and yearly household chore planner",
		Long: `choreplan keeps a cleaning plan for every week, month and year.

Run without arguments in a terminal to open the interactive planner.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Interactive {
				run := app.RunTUI
				if run == nil {
					run = runTUI
				}
				return run(app)
			}
			return renderCurrent(cmd.OutOrStdout(), app)
		},
	}

	root.AddCommand(
		newShowCmd(app),
		newNextCmd(app),
		newPrevCmd(app),
		newModeCmd(app),
		newAddCmd(app),
		newEditCmd(app),
		newToggleCmd(app),
		newRemoveCmd(app),
		newFillCmd(app),
		newBankCmd(app),
		newPickCmd(app),
		newPrintCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newStatusCmd(app),
		newResetCmd(app),
		newVersionCmd(app),
		newTUICmd(app),
	)

	return root
}

// renderCurrent prints the bucket the store is currently looking at.
func renderCurrent(w io.Writer, app *App) error {
	s := app.Store
	key := s.CurrentWeekStart()
	switch s.ViewMode() {
	case domain.ViewMonthly:
		fmt.Fprint(w, formatter.FormatBucket(formatter.MonthTitle(key), s.Month(key)))
	case domain.ViewYearly:
		fmt.Fprint(w, formatter.FormatBucket(formatter.YearTitle(key), s.Year(key)))
	default:
		fmt.Fprint(w, formatter.FormatWeek(key, s.Week(key)))
	}
	warnUnsaved(w, app)
	return nil
}

// warnUnsaved reports a failed save. The change itself stays in effect.
func warnUnsaved(w io.Writer, app *App) {
	if err := app.Store.SaveErr(); err != nil {
		fmt.Fprintf(w, "\n%s %v\n", formatter.StyleYellow.Render("warning: changes were not saved:"), err)
	}
}
