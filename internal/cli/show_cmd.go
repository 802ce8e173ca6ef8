package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current week, month or year",
		Example: `  choreplan show
  choreplan show --week today
  choreplan show --week 2025-06-04`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if week != "" {
				t, err := parseWeekArg(week, app.now())
				if err != nil {
					return err
				}
				app.Store.GoToWeek(cmd.Context(), t)
			}
			return renderCurrent(cmd.OutOrStdout(), app)
		},
	}

	cmd.Flags().StringVarP(&week, "week", "w", "", `Jump to the week containing DATE (YYYY-MM-DD or "today")`)
	return cmd
}

func newNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Move to the following week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Store.NextWeek(cmd.Context())
			return renderCurrent(cmd.OutOrStdout(), app)
		},
	}
}

func newPrevCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "prev",
		Aliases: []string{"previous"},
		Short:   "Move to the preceding week",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Store.PrevWeek(cmd.Context())
			return renderCurrent(cmd.OutOrStdout(), app)
		},
	}
}

func newModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "mode weekly|monthly|yearly",
		Short:     "Switch between the weekly, monthly and yearly plan",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"weekly", "monthly", "yearly"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := domain.ParseViewMode(strings.ToLower(args[0]))
			if !ok {
				return fmt.Errorf("unknown view mode %q (expected weekly, monthly or yearly)", args[0])
			}
			if err := app.Store.SetViewMode(cmd.Context(), mode); err != nil {
				return err
			}
			return renderCurrent(cmd.OutOrStdout(), app)
		},
	}
}

// parseWeekArg accepts "today" or a YYYY-MM-DD date.
func parseWeekArg(s string, now time.Time) (time.Time, error) {
	if strings.EqualFold(s, "today") {
		return now, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or today)", s)
	}
	return t, nil
}
