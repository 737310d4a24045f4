// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package file

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/kkokgo/masterdb/internal/destination"
	"github.com/kkokgo/masterdb/internal/destination/writer"
	"github.com/kkokgo/masterdb/internal/logger"
	"github.com/kkokgo/masterdb/internal/table"
)

const (
	loggerName = "masterdb:destination:file"
	filePerm   = 0o644
	dirPerm    = 0o755
)

var (
	_ destination.Sender  = &fileDestination{}
	_ destination.Locator = &fileDestination{}
)

type fileDestination struct {
	path string
}

// NewDestination returns a destination writing CSV tables to path.
func NewDestination(path string) destination.Sender {
	return &fileDestination{path: path}
}

func (d *fileDestination) Location() string {
	return d.path
}

// Send writes data to a temporary file next to the target path and renames it once complete.
func (d *fileDestination) Send(ctx context.Context, data *table.Table) error {
	log := logger.Named(ctx, loggerName)

	err := WriteFile(d.path, func(w io.Writer) error {
		return writer.NewDestination(w).Send(ctx, data)
	})
	if err != nil {
		return destination.NewWriteError(d.path, err)
	}

	log.Debug("file written", "path", d.path, "rows", data.Len())
	return nil
}

// WriteFile fills a temporary file in the directory of path with write and renames it
// to path. The directory is created when missing and path is left untouched when
// write fails.
func WriteFile(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
