package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ksload/internal/checksum"
	"github.com/vvka-141/ksload/internal/files/filesystem"
	"github.com/vvka-141/ksload/internal/logging"
	"github.com/vvka-141/ksload/internal/services"
	"github.com/vvka-141/ksload/pkg/ksload"
)

// globalFlags holds the persistent flag values shared by every command.
type globalFlags struct {
	csv          string
	db           string
	table        string
	configPath   string
	sampleRows   int
	writeRetries int
	encodings    []string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "ksload",
		Short: "Load the Kaggle Kickstarter dataset into SQLite",
		Long: `ksload reads the Kickstarter projects CSV, infers a column type for every field,
replaces a SQLite table with its contents and prints the resulting schema together
with a few sample rows.

Running ksload without a subcommand performs the whole sequence. When the CSV is
missing, download instructions are printed instead and nothing is written.

Configuration (lowest to highest precedence):
  defaults < ksload.yaml < environment (.env, KSLOAD_*) < flags

Exit Codes:
  0  - Success (including a missing CSV with instructions printed)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - CSV could not be decoded with any configured encoding
  12 - Malformed CSV
  13 - SQLite error
  14 - CSV, database or table not found`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, flags, true)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	pf.StringVar(&flags.csv, "csv", ksload.DefaultCSVPath, "Path to the source CSV file ($"+envCSV+")")
	pf.StringVar(&flags.db, "db", ksload.DefaultDBPath, "Path to the SQLite database file ($"+envDB+")")
	pf.StringVar(&flags.table, "table", ksload.DefaultTableName, "Table replaced by the load ($"+envTable+")")
	pf.IntVar(&flags.sampleRows, "sample-rows", ksload.DefaultSampleRows, "Rows printed by the explorer ($"+envSampleRows+")")
	pf.StringSliceVar(&flags.encodings, "encoding", ksload.DefaultEncodings(),
		"Encoding to try, repeatable; tried in order ($"+envEncodings+", comma separated)")
	pf.IntVar(&flags.writeRetries, "write-retries", 0,
		"Retries of the table replace while the database is locked ($"+envRetries+")")
	pf.StringVar(&flags.configPath, "config", "", "Path to a config file (default ./"+configFileName+" when present)")

	_ = cmd.RegisterFlagCompletionFunc("encoding", completeEncodings)
	_ = cmd.RegisterFlagCompletionFunc("config", completeYAMLFiles)

	cmd.AddCommand(
		newLoadCmd(flags),
		newExploreCmd(flags),
		newInstructionsCmd(flags),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return newRootCmd().Execute()
}

// runPipeline runs the preflight check and the loader, then the explorer when explore is set.
func runPipeline(cmd *cobra.Command, flags *globalFlags, explore bool) error {
	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(settings.Verbose)
	out := cmd.OutOrStdout()
	fsys := filesystem.NewOSFileSystem()

	pipeline := services.NewPipeline(
		fsys,
		services.NewLoader(fsys, checksum.New(), logger, out),
		services.NewExplorer(logger, out),
		logger,
		out,
	)

	ctx, stop := signalContext(cmd)
	defer stop()

	result, err := pipeline.Run(ctx, settings, explore)
	if err != nil {
		return err
	}
	if result.CSVFound {
		logger.Verbose("Loaded %d rows into %s", result.Dataset.NumRows(), settings.DBPath)
	}
	return nil
}

// signalContext derives a context cancelled on Ctrl+C or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
