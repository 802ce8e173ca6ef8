package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/alexanderramin/choreplan/internal/snapshot"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole planner state as a JSON or YAML document",
		Example: `  choreplan export > backup.json
  choreplan export -o backup.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := transferFormat(format, output)
			if err != nil {
				return err
			}
			data, err := app.Store.ExportAs(cmd.Context(), f)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s.\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to FILE instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default: from the file extension, else json)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the whole planner state from an exported document",
		Long: `Replace the whole planner state from an exported document.

The document is checked in full first: if anything is wrong nothing is
changed. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := transferFormat(format, path)
			if err != nil {
				return err
			}

			var data []byte
			if path == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("reading import: %w", err)
			}

			if err := app.Store.ImportAs(cmd.Context(), data, f); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			state := app.Store.State()
			fmt.Fprintf(w, "Imported %d weeks, %d months, %d years and %d library tasks.\n",
				len(state.WeekData), len(state.MonthlyData), len(state.YearlyData), len(state.TaskBank))
			fmt.Fprintln(w, formatter.Dim("Now viewing "+fillTarget(app)+"."))
			warnUnsaved(w, app)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default: from the file extension, else json)")
	return cmd
}

// transferFormat picks the explicit --format or guesses from path.
func transferFormat(flag, path string) (snapshot.Format, error) {
	if flag != "" {
		return snapshot.ParseFormat(flag)
	}
	if path == "" || path == "-" {
		return snapshot.FormatJSON, nil
	}
	return snapshot.FormatForPath(path), nil
}
