package cli

import "github.com/spf13/cobra"

func newLoadCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the CSV into SQLite without exploring it",
		Long: `Load reads the CSV file, replaces the configured table and reports its rows,
column headers and inferred data types.

A missing CSV prints download instructions and exits successfully.

Examples:
  # Load the default dataset
  ksload load

  # Load a different file into a custom table, trying Latin-1 first
  ksload load --csv raw/ks-projects-201801.csv --table projects_2018 --encoding latin-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, flags, false)
		},
	}
}
