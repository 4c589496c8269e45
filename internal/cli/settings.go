package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ksload/internal/config"
	"github.com/vvka-141/ksload/pkg/ksload"
)

const (
	configFileName = config.ConfigFileName
	envCSV         = config.EnvCSV
	envDB          = config.EnvDB
	envTable       = config.EnvTable
	envSampleRows  = config.EnvSampleRows
	envEncodings   = config.EnvEncodings
	envRetries     = config.EnvRetries
)

// resolveSettings merges defaults, the config file, the environment and explicitly set
// flags, in that order, and validates the result.
func resolveSettings(cmd *cobra.Command, flags *globalFlags) (ksload.Settings, error) {
	_ = godotenv.Load()

	settings := ksload.DefaultSettings()

	fileCfg, err := loadFileConfig(cmd, flags.configPath)
	if err != nil {
		return ksload.Settings{}, err
	}
	if fileCfg != nil {
		fileCfg.Apply(&settings)
	}

	if err := config.ApplyEnv(&settings, os.LookupEnv); err != nil {
		return ksload.Settings{}, err
	}

	changed := cmd.Flags().Changed
	if changed("csv") {
		settings.CSVPath = flags.csv
	}
	if changed("db") {
		settings.DBPath = flags.db
	}
	if changed("table") {
		settings.TableName = flags.table
	}
	if changed("sample-rows") {
		settings.SampleRows = flags.sampleRows
	}
	if changed("encoding") {
		settings.Encodings = append([]string(nil), flags.encodings...)
	}
	if changed("write-retries") {
		settings.WriteRetries = flags.writeRetries
	}
	settings.Verbose = getVerboseFlag(cmd)

	if err := settings.Validate(); err != nil {
		return ksload.Settings{}, err
	}
	return settings, nil
}

// loadFileConfig reads the config file. An absent ./ksload.yaml is not an error,
// an absent file named by --config is.
func loadFileConfig(cmd *cobra.Command, path string) (*config.FileConfig, error) {
	explicit := cmd.Flags().Changed("config") && path != ""
	if !explicit {
		path = configFileName
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, config.ErrConfigNotFound) && !explicit:
		return nil, nil
	case errors.Is(err, config.ErrConfigNotFound):
		return nil, fmt.Errorf("config file %s does not exist: %w", path, ksload.ErrInvalidConfig)
	default:
		return nil, fmt.Errorf("failed to load %s: %v: %w", path, err, ksload.ErrInvalidConfig)
	}
}
