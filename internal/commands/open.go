package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/export"
)

func newOpenCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "open [id]",
		Short: "Replace the draft with an archived document",
		Long:  "Replace the draft with an archived document. Without an id the latest document is opened.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runOpen(cmd, ws, args)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")

	return cmd
}

func runOpen(cmd *cobra.Command, ws *workspace, args []string) error {
	var doc *export.Document
	var err error
	if len(args) == 0 {
		doc, err = ws.store.Latest()
	} else {
		seq, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}
		doc, err = ws.store.Open(seq)
	}
	if err != nil {
		return err
	}

	b, err := export.ApplyDocument(ws.schema, doc)
	if err != nil {
		return err
	}

	if err := ws.store.SaveDraft(b); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Opened document %d into the draft\n", doc.ID)
	return nil
}
