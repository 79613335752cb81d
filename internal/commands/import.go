package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var format string
	var encoding string

	cmd := &cobra.Command{
		Use:   "import [file]...",
		Short: "Merge worksheet values into the draft",
		Long: `Merge worksheet values into the draft.

With no arguments, every CSV in <dir>/import/ is processed and moved to
import/processed/ afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runImport(cmd, ws, args, format, encoding)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&format, "format", "simple", "worksheet format (rows or simple)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "input encoding (utf-8 or windows-1254)")

	return cmd
}

func runImport(cmd *cobra.Command, ws *workspace, files []string, format, encoding string) error {
	p := importer.DefaultRegistry(ws.schema).Get(format)
	if p == nil {
		return fmt.Errorf("unknown format %q", format)
	}

	fromInbox := false
	if len(files) == 0 {
		scanned, err := importer.Scan(ws.dir)
		if err != nil {
			return err
		}
		if len(scanned) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
			return nil
		}
		for _, f := range scanned {
			files = append(files, f.Path)
		}
		fromInbox = true
	}

	b, err := ws.draft()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	applied, skipped := 0, 0
	for _, file := range files {
		res, err := parseWorksheet(file, p, encoding)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, um := range res.Unmatched {
			skipped++
			fmt.Fprintf(out, "  %s:%d: no match for %q\n", filepath.Base(file), um.Line, um.Label)
		}
		for _, e := range res.Entries {
			if err := b.SetValue(e.Code, e.Value); err != nil {
				skipped++
				fmt.Fprintf(out, "  %s: %v\n", filepath.Base(file), err)
				continue
			}
			applied++
		}
		if fromInbox {
			if err := importer.MarkProcessed(ws.dir, filepath.Base(file)); err != nil {
				return err
			}
		}
	}

	if err := ws.store.SaveDraft(b); err != nil {
		return err
	}
	fmt.Fprintf(out, "Applied %d value(s), skipped %d row(s)\n", applied, skipped)
	return nil
}

func parseWorksheet(path string, p importer.Parser, encoding string) (res *importer.Result, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader
	if r, err = importer.NewReader(f, encoding); err != nil {
		return nil, err
	}
	return p.Parse(r)
}
