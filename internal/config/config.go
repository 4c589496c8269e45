package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ksload/pkg/ksload"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileConfig is the shape of ksload.yaml. Unset keys leave defaults untouched.
type FileConfig struct {
	CSV        string   `yaml:"csv,omitempty"`
	Database   string   `yaml:"database,omitempty"`
	Table      string   `yaml:"table,omitempty"`
	SampleRows *int     `yaml:"sample_rows,omitempty"`
	Encodings  []string `yaml:"encodings,omitempty"`

	WriteRetries *int `yaml:"write_retries,omitempty"`
}

const ConfigFileName = "ksload.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvCSV        = "KSLOAD_CSV"
	EnvDB         = "KSLOAD_DB"
	EnvTable      = "KSLOAD_TABLE"
	EnvSampleRows = "KSLOAD_SAMPLE_ROWS"
	EnvEncodings  = "KSLOAD_ENCODINGS"
	EnvRetries    = "KSLOAD_WRITE_RETRIES"
)

func Load(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply copies every key set in the file over s.
func (c *FileConfig) Apply(s *ksload.Settings) {
	if c.CSV != "" {
		s.CSVPath = c.CSV
	}
	if c.Database != "" {
		s.DBPath = c.Database
	}
	if c.Table != "" {
		s.TableName = c.Table
	}
	if c.SampleRows != nil {
		s.SampleRows = *c.SampleRows
	}
	if len(c.Encodings) > 0 {
		s.Encodings = append([]string(nil), c.Encodings...)
	}
	if c.WriteRetries != nil {
		s.WriteRetries = *c.WriteRetries
	}
}

// ApplyEnv overrides s with the KSLOAD_* variables returned by lookup.
// Empty values are ignored. KSLOAD_ENCODINGS is a comma separated list.
func ApplyEnv(s *ksload.Settings, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvCSV); ok {
		s.CSVPath = v
	}
	if v, ok := get(EnvDB); ok {
		s.DBPath = v
	}
	if v, ok := get(EnvTable); ok {
		s.TableName = v
	}
	if v, ok := get(EnvSampleRows); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not an integer: %w", EnvSampleRows, v, ksload.ErrInvalidConfig)
		}
		s.SampleRows = n
	}
	if v, ok := get(EnvEncodings); ok {
		s.Encodings = SplitList(v)
	}
	if v, ok := get(EnvRetries); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not an integer: %w", EnvRetries, v, ksload.ErrInvalidConfig)
		}
		s.WriteRetries = n
	}
	return nil
}

// SplitList splits a comma separated value, dropping blank entries.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
