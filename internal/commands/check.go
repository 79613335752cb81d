package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/format"
	"github.com/bilanco-dev/bilanco/internal/input"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/report"
)

func newCheckCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the draft and report findings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runCheck(cmd, ws)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")

	return cmd
}

func runCheck(cmd *cobra.Command, ws *workspace) error {
	b, err := ws.draft()
	if err != nil {
		return err
	}
	tol, err := ws.cfg.Tolerance()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	metaErrs := input.ValidateMetadata(b.Company(), b.Date(), ws.cfg.Checks.MaxFutureDays, time.Now())
	for _, e := range metaErrs {
		fmt.Fprintf(out, "- INPUT: %s\n", e)
	}

	findings := b.Analyze(tol)
	report.Findings(out, findings)

	if len(metaErrs) == 0 && len(findings) == 0 {
		fmt.Fprintln(out, "No findings.")
	}

	res := b.CheckBalance(tol)
	status := "DENGELİ"
	if !res.Balanced {
		status = "DENGESİZ"
	}
	fmt.Fprintf(out, "Aktif %s / Pasif %s / Fark %s (%s)\n",
		format.Amount(res.Aktif), format.Amount(res.Pasif), format.Amount(res.Difference), status)

	// Metadata errors would also block save and export, so they fail the
	// check alongside critical findings.
	if len(metaErrs) > 0 {
		return fmt.Errorf("%d metadata error(s)", len(metaErrs))
	}
	if model.HasCritical(findings) {
		return fmt.Errorf("critical findings")
	}
	return nil
}
