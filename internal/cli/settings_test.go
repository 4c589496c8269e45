package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ksload/pkg/ksload"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

func TestSettings_ConfigFile(t *testing.T) {
	isolate(t)
	writeDefaultCSV(t, projectsCSV)
	writeFile(t, configFileName, "table: from_yaml\ndatabase: out/ks.db\n")

	out, err := execute(t, "load")
	require.NoError(t, err)
	assert.Contains(t, out, "Table: from_yaml\n")
	assert.Contains(t, out, "Data loaded successfully into out/ks.db\n")
}

func TestSettings_EnvOverridesConfigFile(t *testing.T) {
	isolate(t)
	writeDefaultCSV(t, projectsCSV)
	writeFile(t, configFileName, "table: from_yaml\n")
	t.Setenv(envTable, "from_env")

	out, err := execute(t, "load")
	require.NoError(t, err)
	assert.Contains(t, out, "Table: from_env\n")
}

func TestSettings_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	writeDefaultCSV(t, projectsCSV)
	writeFile(t, configFileName, "table: from_yaml\n")
	t.Setenv(envTable, "from_env")

	out, err := execute(t, "load", "--table", "from_flag")
	require.NoError(t, err)
	assert.Contains(t, out, "Table: from_flag\n")
}

func TestSettings_DotEnvFile(t *testing.T) {
	isolate(t)
	writeDefaultCSV(t, projectsCSV)
	writeFile(t, ".env", envTable+"=from_dotenv\n")
	require.NoError(t, os.Unsetenv(envTable))

	out, err := execute(t, "load")
	require.NoError(t, err)
	assert.Contains(t, out, "Table: from_dotenv\n")
}

func TestSettings_EnvEncodings(t *testing.T) {
	isolate(t)
	writeDefaultCSV(t, "name\ncaf\xe9\n")
	t.Setenv(envEncodings, "latin-1")

	out, err := execute(t, "load")
	require.NoError(t, err)
	assert.NotContains(t, out, "encoding failed")
	assert.Contains(t, out, "Rows: 1\n")
}

func TestSettings_EncodingFlagRepeatable(t *testing.T) {
	isolate(t)
	writeDefaultCSV(t, "name\ncaf\xe9\n")

	out, err := execute(t, "load", "--encoding", "utf-8", "--encoding", "latin-1")
	require.NoError(t, err)
	assert.Contains(t, out, "utf-8 encoding failed, trying latin-1...\n")
}

func TestSettings_ExplicitConfigMissing(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--config", "nope.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ksload.ErrInvalidConfig))
	assert.Equal(t, ksload.ExitConfigError, ksload.ExitCodeForError(err))
}

func TestSettings_InvalidConfigFile(t *testing.T) {
	isolate(t)
	writeFile(t, configFileName, "{{invalid")

	_, err := execute(t)
	require.Error(t, err)
	assert.Equal(t, ksload.ExitConfigError, ksload.ExitCodeForError(err))
}

func TestSettings_NegativeSampleRows(t *testing.T) {
	isolate(t)
	t.Setenv(envSampleRows, "-1")

	_, err := execute(t, "explore")
	require.Error(t, err)
	assert.Equal(t, ksload.ExitConfigError, ksload.ExitCodeForError(err))
}
