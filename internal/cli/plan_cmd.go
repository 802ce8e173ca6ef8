package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/choreplan/internal/catalog"
	"github.com/alexanderramin/choreplan/internal/cli/formatter"
	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/spf13/cobra"
)

var errNeedsConfirmation = errors.New("refusing to overwrite without confirmation in a non-interactive session (pass --yes)")

func newFillCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "fill",
		Aliases: []string{"autofill"},
		Short:   "Replace the current plan with the default routine",
		Long: `Replace the current week, month or year with the default cleaning
routine from the catalog. Everything already planned there is discarded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			target := fillTarget(app)
			if !yes {
				if !app.Interactive {
					return errNeedsConfirmation
				}
				ok, err := app.confirm(
					fmt.Sprintf("Replace %s with the default routine?", target),
					"Every task already planned there will be discarded.",
				)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(w, formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Store.AutoFill(cmd.Context(), app.Store.CurrentWeekStart()); err != nil {
				return err
			}
			fmt.Fprintf(w, "Filled %s with the default routine.\n\n", target)
			return renderCurrent(w, app)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// fillTarget describes what autofill will replace.
func fillTarget(app *App) string {
	key := app.Store.CurrentWeekStart()
	switch app.Store.ViewMode() {
	case domain.ViewMonthly:
		return formatter.MonthTitle(key)
	case domain.ViewYearly:
		return formatter.YearTitle(key)
	}
	start, err := domain.ParseWeekKey(key)
	if err != nil {
		return "the week of " + key
	}
	return "the week of " + formatter.WeekRange(start)
}

func newBankCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "bank",
		Aliases: []string{"library"},
		Short:   "List library tasks suited to the current view",
		Long: `List the task library. By default only templates whose frequency
suits the current view are shown: daily and weekly for the weekly view,
monthly for the monthly view and yearly for the yearly view.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := app.Store.TaskBank()
			if !all {
				templates = catalog.Suggestions(templates, app.Store.ViewMode())
			}
			w := cmd.OutOrStdout()
			if len(templates) == 0 {
				fmt.Fprintln(w, formatter.Dim("The library has nothing for this view."))
				return nil
			}
			fmt.Fprint(w, formatter.FormatBank(templates))
			fmt.Fprintln(w, formatter.Dim("Add one with: choreplan pick ID --day DAY"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show every template regardless of the view")
	return cmd
}

func newPrintCmd(app *App) *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the current week as a printable checklist",
		Long: `Render the current week as a printable Markdown checklist.

Use --raw to get plain Markdown suitable for piping to a file or printer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := app.Store.CurrentWeekStart()
			md, err := formatter.PrintableWeek(key, app.Store.Week(key))
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderMarkdown(md, width))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print Markdown without terminal styling")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap rendered output at this width")
	return cmd
}
