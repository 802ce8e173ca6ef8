package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := app.RunTUI
			if run == nil {
				run = runTUI
			}
			return run(app)
		},
	}
}

// runTUI runs the full-screen planner until the user quits.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running planner: %w", err)
	}
	if err := app.Store.SaveErr(); err != nil {
		return fmt.Errorf("last change was not saved: %w", err)
	}
	return nil
}
