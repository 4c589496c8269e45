package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ksload/internal/checksum"
	"github.com/vvka-141/ksload/internal/files/filesystem"
	"github.com/vvka-141/ksload/internal/logging"
	"github.com/vvka-141/ksload/pkg/ksload"
)

func newTestPipeline(fsys filesystem.FileSystemProvider, out *bytes.Buffer) *Pipeline {
	logger := logging.NewNullLogger()
	return NewPipeline(
		fsys,
		NewLoader(fsys, checksum.New(), logger, out),
		NewExplorer(logger, out),
		logger,
		out,
	)
}

func testSettings(t *testing.T) ksload.Settings {
	s := ksload.DefaultSettings()
	s.CSVPath = "data/ks-projects-201612.csv"
	s.DBPath = filepath.Join(t.TempDir(), "data", "kickstarter.db")
	return s
}

func TestPipeline_Run_MissingCSVPrintsInstructions(t *testing.T) {
	s := testSettings(t)

	var out bytes.Buffer
	res, err := newTestPipeline(filesystem.NewMemoryFileSystem(), &out).Run(context.Background(), s, true)
	require.NoError(t, err)
	assert.False(t, res.CSVFound)
	assert.Nil(t, res.Dataset)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "CSV file not found at data/ks-projects-201612.csv\nTo download data from Kaggle:\n"))
	assert.Contains(t, text, "4. Extract the CSV file to the data/ directory\n")
	assert.True(t, strings.HasSuffix(text, "\nAfter downloading, place the CSV file at: data/ks-projects-201612.csv\n"))

	_, statErr := os.Stat(s.DBPath)
	assert.True(t, os.IsNotExist(statErr), "no database file may be created")
	_, statErr = os.Stat(filepath.Dir(s.DBPath))
	assert.True(t, os.IsNotExist(statErr), "no data directory may be created")
}

func TestPipeline_Run_CSVPathIsDirectory(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("data/ks-projects-201612.csv/inner.csv", "a\n1\n")

	var out bytes.Buffer
	res, err := newTestPipeline(mfs, &out).Run(context.Background(), testSettings(t), true)
	require.NoError(t, err)
	assert.False(t, res.CSVFound)
}

func TestPipeline_Run_LoadsAndExplores(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("data/ks-projects-201612.csv", projectsCSV)
	s := testSettings(t)

	var out bytes.Buffer
	res, err := newTestPipeline(mfs, &out).Run(context.Background(), s, true)
	require.NoError(t, err)

	require.True(t, res.CSVFound)
	assert.Equal(t, 2, res.Dataset.NumRows())
	assert.Equal(t, int64(res.Dataset.NumRows()), res.ExploredRows)

	text := out.String()
	assert.Contains(t, text, "Rows: 2\nColumns: 3\n")
	assert.Contains(t, text, " 1. id\n 2. name\n 3. pledged\n")
	assert.Contains(t, text, "\nDatabase Schema:\n")
	assert.Contains(t, text, "Total rows: 2\n")
	assert.Contains(t, text, "\nRow 1:\n  id: 1\n  name: Alpha\n  pledged: 100.0\n")
	assert.Contains(t, text, "\nRow 2:\n  id: 2\n  name: Beta\n  pledged: 250.5\n")
	assert.Less(t, strings.Index(text, "Data types:"), strings.Index(text, "Database Schema:"))
}

func TestPipeline_Run_LoadOnly(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("data/ks-projects-201612.csv", projectsCSV)
	s := testSettings(t)

	var out bytes.Buffer
	res, err := newTestPipeline(mfs, &out).Run(context.Background(), s, false)
	require.NoError(t, err)

	assert.True(t, res.CSVFound)
	assert.Zero(t, res.ExploredRows)
	assert.NotContains(t, out.String(), "Database Schema:")
	_, statErr := os.Stat(s.DBPath)
	assert.NoError(t, statErr)
}

func TestPipeline_Run_InvalidSettings(t *testing.T) {
	s := testSettings(t)
	s.Encodings = []string{"koi8-r"}

	var out bytes.Buffer
	_, err := newTestPipeline(filesystem.NewMemoryFileSystem(), &out).Run(context.Background(), s, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ksload.ErrInvalidConfig))
	assert.Empty(t, out.String())
}

func TestPipeline_Run_MalformedCSVStops(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("data/ks-projects-201612.csv", "a,b\n1,2,3\n")

	var out bytes.Buffer
	_, err := newTestPipeline(mfs, &out).Run(context.Background(), testSettings(t), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ksload.ErrMalformedCSV))
	assert.NotContains(t, out.String(), "Database Schema:")
}

func TestPipeline_Run_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data", "ks-projects-201612.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(csvPath), 0o755))
	require.NoError(t, os.WriteFile(csvPath, []byte(projectsCSV), 0o644))

	s := ksload.DefaultSettings()
	s.CSVPath = csvPath
	s.DBPath = filepath.Join(dir, "data", "kickstarter.db")

	var out bytes.Buffer
	res, err := newTestPipeline(filesystem.NewOSFileSystem(), &out).Run(context.Background(), s, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ExploredRows)
}
