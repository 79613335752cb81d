package commands

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/export"
)

func newExportCommand() *cobra.Command {
	var dir string
	var out string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the draft as CSV rows or a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runExport(cmd, ws, out, format)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().StringVar(&format, "format", "", "csv or json (default: by extension)")

	return cmd
}

func runExport(cmd *cobra.Command, ws *workspace, out, format string) error {
	if format == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".csv":
			format = "csv"
		case ".json":
			format = "json"
		default:
			return fmt.Errorf("cannot infer format from %q; use --format", out)
		}
	}

	b, err := ws.draft()
	if err != nil {
		return err
	}
	p, err := ws.policy(time.Now())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case "csv":
		rows, err := export.Rows(b, p)
		if err != nil {
			return err
		}
		if err := export.WriteRows(&buf, rows); err != nil {
			return err
		}
	case "json":
		doc, err := export.BuildDocument(b, p)
		if err != nil {
			return err
		}
		if err := export.EncodeDocument(&buf, doc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if err := atomic.WriteFile(out, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", format, out)
	return nil
}
