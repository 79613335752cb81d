package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/report"
	"github.com/bilanco-dev/bilanco/internal/table"
)

func newListCommand() *cobra.Command {
	var dir string
	var colored bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runList(cmd, ws, colored)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().BoolVar(&colored, "color", false, "colorize amounts")

	return cmd
}

func runList(cmd *cobra.Command, ws *workspace, colored bool) error {
	summaries, err := ws.store.List()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No archived documents.")
		return nil
	}

	tol, err := ws.cfg.Tolerance()
	if err != nil {
		return err
	}

	r := &table.TextRenderer{Color: colored}
	return r.Render(report.Archive(summaries, tol), cmd.OutOrStdout())
}
