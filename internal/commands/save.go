package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/export"
	"github.com/bilanco-dev/bilanco/internal/id"
)

func newSaveCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Archive the draft as a numbered document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runSave(cmd, ws)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")

	return cmd
}

func runSave(cmd *cobra.Command, ws *workspace) error {
	b, err := ws.draft()
	if err != nil {
		return err
	}
	p, err := ws.policy(time.Now())
	if err != nil {
		return err
	}

	doc, err := export.BuildDocument(b, p)
	if err != nil {
		return err
	}

	seq, err := ws.store.Archive(doc, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved document %d (%s)\n", seq, id.FormatDocName(seq))
	return nil
}
