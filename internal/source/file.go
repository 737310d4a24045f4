// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"context"
	"fmt"
	"os"

	"github.com/kkokgo/masterdb/internal/logger"
	"github.com/kkokgo/masterdb/internal/table"
)

const (
	loggerName = "masterdb:source"
)

var _ Source = &FileSource{}

// FileSource reads both datasets from CSV files.
type FileSource struct {
	dataDir    string
	schoolPath string
	majorPath  string
}

// NewFileSource returns a source reading schoolPath and majorPath. dataDir is only used to
// tell the user where the files are expected.
func NewFileSource(dataDir, schoolPath, majorPath string) *FileSource {
	return &FileSource{
		dataDir:    dataDir,
		schoolPath: schoolPath,
		majorPath:  majorPath,
	}
}

// Load reads the school file first and the major file after it.
func (s *FileSource) Load(ctx context.Context) (*Data, error) {
	schools, err := ReadFile(ctx, s.dataDir, s.schoolPath)
	if err != nil {
		return nil, err
	}

	majors, err := ReadFile(ctx, s.dataDir, s.majorPath)
	if err != nil {
		return nil, err
	}

	logger.Named(ctx, loggerName).Info("input files loaded", "schools", schools.Len(), "majors", majors.Len())
	return &Data{
		Schools: schools,
		Majors:  majors,
	}, nil
}

// ReadFile opens path and parses it as a CSV table. Open failures are reported as
// *MissingInputError referencing dataDir.
func ReadFile(ctx context.Context, dataDir, path string) (*table.Table, error) {
	log := logger.Named(ctx, loggerName)

	file, err := os.Open(path)
	if err != nil {
		log.Debug("cannot open input file", "path", path, "error", err)
		return nil, &MissingInputError{
			Dir:  dataDir,
			Path: path,
			err:  err,
		}
	}
	defer file.Close()

	tbl, err := table.Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	log.Debug("input file parsed", "path", path, "rows", tbl.Len(), "columns", len(tbl.Columns))
	if tbl.Len() > 0 {
		log.Trace("first input record", "path", path, "record", tbl.Record(0))
	}
	return tbl, nil
}
