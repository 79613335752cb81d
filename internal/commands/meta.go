package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/input"
)

func newMetaCommand() *cobra.Command {
	var dir string
	var company string
	var date string

	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Show or update the draft's company name and report date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			return runMeta(cmd, ws, company, date)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&date, "date", "", "report date (YYYY-MM-DD)")

	return cmd
}

func runMeta(cmd *cobra.Command, ws *workspace, company, date string) error {
	b, err := ws.draft()
	if err != nil {
		return err
	}

	if company == "" && date == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Company: %s\nDate:    %s\n", b.Company(), b.Date())
		return nil
	}

	if company != "" {
		b.SetCompany(company)
	}
	if date != "" {
		if _, err := input.ParseDate(date); err != nil {
			return err
		}
		b.SetDate(date)
	}

	if err := ws.store.SaveDraft(b); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Metadata updated")
	return nil
}
