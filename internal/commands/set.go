package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/bilanco-dev/bilanco/internal/input"
)

func newSetCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "set <code> <value> [<code> <value>]...",
		Short: "Set line-item values on the draft",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected <code> <value> pairs")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runSet(cmd, ws, args)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")

	return cmd
}

// runSet applies every valid pair; one bad value does not block the rest of
// the batch.
func runSet(cmd *cobra.Command, ws *workspace, args []string) error {
	b, err := ws.draft()
	if err != nil {
		return err
	}

	var errs error
	applied := 0
	for i := 0; i < len(args); i += 2 {
		code, raw := args[i], args[i+1]
		// Unknown and group codes fall through with a zero value so SetValue
		// reports them.
		var v decimal.Decimal
		if item, ok := ws.schema.Lookup(code); ok && item.IsItem() {
			parsed, err := input.ValidateAmount(item, raw)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			v = parsed
		}
		if err := b.SetValue(code, v); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		applied++
	}

	if applied > 0 {
		if err := ws.store.SaveDraft(b); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %d item(s)\n", applied)
	return errs
}
