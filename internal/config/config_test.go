package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ksload/pkg/ksload"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, `csv: raw/projects.csv
database: out/ks.db
table: projects
sample_rows: 3
encodings: [latin-1, utf-8]
write_retries: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "raw/projects.csv", cfg.CSV)
	assert.Equal(t, "out/ks.db", cfg.Database)
	assert.Equal(t, "projects", cfg.Table)
	require.NotNil(t, cfg.SampleRows)
	assert.Equal(t, 3, *cfg.SampleRows)
	assert.Equal(t, []string{"latin-1", "utf-8"}, cfg.Encodings)
	require.NotNil(t, cfg.WriteRetries)
	assert.Equal(t, 2, *cfg.WriteRetries)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, FileConfig{}, *cfg)
}

func TestApply_OnlySetKeys(t *testing.T) {
	s := ksload.DefaultSettings()
	(&FileConfig{Table: "projects"}).Apply(&s)

	assert.Equal(t, "projects", s.TableName)
	assert.Equal(t, ksload.DefaultCSVPath, s.CSVPath)
	assert.Equal(t, ksload.DefaultDBPath, s.DBPath)
	assert.Equal(t, ksload.DefaultSampleRows, s.SampleRows)
	assert.Equal(t, ksload.DefaultEncodings(), s.Encodings)
}

func TestApply_ZeroSampleRows(t *testing.T) {
	zero := 0
	s := ksload.DefaultSettings()
	(&FileConfig{SampleRows: &zero}).Apply(&s)
	assert.Equal(t, 0, s.SampleRows)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvCSV:        "env.csv",
		EnvDB:         "env.db",
		EnvTable:      " env_table ",
		EnvSampleRows: "7",
		EnvEncodings:  "latin1, ,utf8",
		EnvRetries:    "4",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	s := ksload.DefaultSettings()
	require.NoError(t, ApplyEnv(&s, lookup))

	assert.Equal(t, "env.csv", s.CSVPath)
	assert.Equal(t, "env.db", s.DBPath)
	assert.Equal(t, "env_table", s.TableName)
	assert.Equal(t, 7, s.SampleRows)
	assert.Equal(t, []string{"latin1", "utf8"}, s.Encodings)
	assert.Equal(t, 4, s.WriteRetries)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	lookup := func(string) (string, bool) { return "", true }

	s := ksload.DefaultSettings()
	require.NoError(t, ApplyEnv(&s, lookup))
	assert.Equal(t, ksload.DefaultSettings(), s)
}

func TestApplyEnv_InvalidSampleRows(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvSampleRows {
			return "five", true
		}
		return "", false
	}

	s := ksload.DefaultSettings()
	err := ApplyEnv(&s, lookup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ksload.ErrInvalidConfig))
	assert.Contains(t, err.Error(), EnvSampleRows)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,b,"))
	assert.Nil(t, SplitList(" , "))
}
