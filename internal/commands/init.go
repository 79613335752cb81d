package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/config"
	"github.com/bilanco-dev/bilanco/internal/input"
	"github.com/bilanco-dev/bilanco/internal/schema"
	"github.com/bilanco-dev/bilanco/internal/sheet"
	"github.com/bilanco-dev/bilanco/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var date string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new balance-sheet workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if date == "" {
				date = time.Now().Format(input.DateFormat)
			}

			return runInit(cmd, absDir, name, date)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&date, "date", "", "report date (YYYY-MM-DD, default today)")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, date string) error {
	if _, err := input.ParseDate(date); err != nil {
		return err
	}

	// Create directory structure.
	dirs := []string{
		store.ArchiveDir,
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write bilanco.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the built-in chart so it can be customized per workspace.
	s := schema.Default()
	if err := schema.Save(filepath.Join(dir, cfg.Schema.File), s); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}

	// Write a zero-valued draft.
	b := sheet.New(s, name, date)
	if err := store.NewService(dir, s).SaveDraft(b); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized balance-sheet workspace at %s\n", dir)
	return nil
}
