package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/vvka-141/ksload/internal/dataset"
	"github.com/vvka-141/ksload/internal/files/filesystem"
	"github.com/vvka-141/ksload/pkg/ksload"
)

// RunResult describes what a Pipeline run did.
type RunResult struct {
	// CSVFound is false when the preflight check failed and only instructions were printed
	CSVFound bool

	// Dataset is the loaded table, nil when CSVFound is false
	Dataset *dataset.Dataset

	// ExploredRows is the row count printed by the explorer, 0 when exploring was skipped
	ExploredRows int64
}

// Pipeline runs the preflight check, the loader and optionally the explorer in sequence.
// Each stage opens and closes its own database connection.
type Pipeline struct {
	fs       filesystem.FileSystemProvider
	loader   *Loader
	explorer *Explorer
	logger   ksload.Logger
	out      io.Writer
}

// NewPipeline creates a Pipeline with all dependencies injected.
//
// Panics if any dependency is nil.
func NewPipeline(fsys filesystem.FileSystemProvider, loader *Loader, explorer *Explorer, logger ksload.Logger, out io.Writer) *Pipeline {
	if fsys == nil {
		panic("fs cannot be nil")
	}
	if loader == nil {
		panic("loader cannot be nil")
	}
	if explorer == nil {
		panic("explorer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &Pipeline{fs: fsys, loader: loader, explorer: explorer, logger: logger, out: out}
}

// Run loads s.CSVPath into s.DBPath and, when explore is true, prints the loaded table.
// A missing CSV is not an error: instructions are printed and nothing is written.
func (p *Pipeline) Run(ctx context.Context, s ksload.Settings, explore bool) (*RunResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	found, err := filesystem.IsRegularFile(p.fs, s.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", s.CSVPath, err)
	}
	if !found {
		p.logger.Verbose("Preflight: %s: %v", s.CSVPath, ksload.ErrCSVNotFound)
		fmt.Fprintf(p.out, "CSV file not found at %s\n", s.CSVPath)
		Instructions(p.out, filepath.Dir(s.CSVPath))
		fmt.Fprintf(p.out, "\nAfter downloading, place the CSV file at: %s\n", s.CSVPath)
		return &RunResult{CSVFound: false}, nil
	}

	ds, err := p.loader.Load(ctx, s.CSVPath, s.DBPath, LoadOptions{
		TableName:    s.TableName,
		Encodings:    s.Encodings,
		WriteRetries: s.WriteRetries,
	})
	if err != nil {
		return nil, err
	}
	result := &RunResult{CSVFound: true, Dataset: ds}

	if !explore {
		return result, nil
	}

	fmt.Fprintln(p.out)
	count, err := p.explorer.Explore(ctx, s.DBPath, s.TableName, s.SampleRows)
	if err != nil {
		return nil, err
	}
	result.ExploredRows = count

	return result, nil
}
