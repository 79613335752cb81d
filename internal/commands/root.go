package commands

import (
	"github.com/spf13/cobra"

	"github.com/bilanco-dev/bilanco/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bilanco",
		Short:   "Balance-sheet data entry and reporting",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newSetCommand(),
		newMetaCommand(),
		newShowCommand(),
		newCheckCommand(),
		newExportCommand(),
		newImportCommand(),
		newSaveCommand(),
		newOpenCommand(),
		newListCommand(),
	)

	return rootCmd
}
