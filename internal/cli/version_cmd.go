package cli

import (
	"fmt"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

func newVersionCmd(app *App) *cobra.Command {
	var (
		short  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := app.Build
			resp := goversion.FuncWithOutput(short,
				domain.CoalesceStr(b.Version, "dev"),
				domain.CoalesceStr(b.Commit, "none"),
				domain.CoalesceStr(b.Date, "unknown"),
				output)
			fmt.Fprint(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'")
	return cmd
}
