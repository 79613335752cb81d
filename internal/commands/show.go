package commands

import (
	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/report"
)

func newShowCommand() *cobra.Command {
	var dir string
	var colored bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the draft balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			b, err := ws.draft()
			if err != nil {
				return err
			}
			tol, err := ws.cfg.Tolerance()
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), b, tol, colored)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().BoolVar(&colored, "color", false, "colorize amounts")

	return cmd
}
