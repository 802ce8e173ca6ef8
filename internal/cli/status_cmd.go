package cli

import (
	"fmt"

	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/alexanderramin/choreplan/internal/storage"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the plan is stored and what it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc := storage.Description{Backend: "none", Location: "(in memory only)"}
			if app.Storage != nil {
				d, err := app.Storage.Describe(cmd.Context())
				if err != nil {
					return fmt.Errorf("describing storage: %w", err)
				}
				desc = d
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, formatter.FormatStatus(formatter.StatusInput{
				Storage:     desc,
				ConfigFile:  app.ConfigFile,
				CatalogFile: app.CatalogFile,
				State:       app.Store.State(),
				Now:         app.now(),
			}))
			warnUnsaved(w, app)
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved plan",
		Long: `Delete the saved plan from storage. The next run starts again from
the default routine for the current week.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Storage == nil {
				return fmt.Errorf("nothing to reset: no storage is configured")
			}
			w := cmd.OutOrStdout()
			if !yes {
				if !app.Interactive {
					return errNeedsConfirmation
				}
				ok, err := app.confirm("Delete the saved plan?", "This cannot be undone. Export first if you want a backup.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(w, formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := app.Storage.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("resetting storage: %w", err)
			}
			fmt.Fprintln(w, "Saved plan deleted. Defaults will be generated on the next run.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
