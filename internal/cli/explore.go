package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/ksload/internal/logging"
	"github.com/vvka-141/ksload/internal/services"
)

func newExploreCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Print the schema, row count and sample rows of a loaded table",
		Long: `Explore opens an existing database and prints the structure of the loaded
table followed by its first rows. The database is never created.

Examples:
  ksload explore
  ksload explore --db out/ks.db --sample-rows 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, flags)
			if err != nil {
				return err
			}

			logger := logging.NewConsoleLogger(settings.Verbose)
			explorer := services.NewExplorer(logger, cmd.OutOrStdout())

			ctx, stop := signalContext(cmd)
			defer stop()

			_, err = explorer.Explore(ctx, settings.DBPath, settings.TableName, settings.SampleRows)
			return err
		},
	}
}
