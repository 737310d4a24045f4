// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package xlsx

import (
	"context"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/kkokgo/masterdb/internal/destination"
	"github.com/kkokgo/masterdb/internal/logger"
	"github.com/kkokgo/masterdb/internal/table"
)

const (
	loggerName = "masterdb:destination:xlsx"
	dirPerm    = 0o755
)

var (
	_ destination.Sender  = &xlsxDestination{}
	_ destination.Locator = &xlsxDestination{}
)

type xlsxDestination struct {
	path string
}

// NewDestination returns a destination saving tables as a single sheet workbook at path.
func NewDestination(path string) destination.Sender {
	return &xlsxDestination{path: path}
}

func (d *xlsxDestination) Location() string {
	return d.path
}

func (d *xlsxDestination) Send(ctx context.Context, data *table.Table) error {
	log := logger.Named(ctx, loggerName)

	if err := os.MkdirAll(filepath.Dir(d.path), dirPerm); err != nil {
		return destination.NewWriteError(d.path, err)
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	stream, err := workbook.NewStreamWriter(sheet)
	if err != nil {
		return destination.NewWriteError(d.path, err)
	}

	header := make([]any, len(data.Columns))
	for idx, column := range data.Columns {
		header[idx] = column
	}
	if err := setRow(stream, 1, header); err != nil {
		return destination.NewWriteError(d.path, err)
	}

	for rowIdx, row := range data.Rows {
		if err := setRow(stream, rowIdx+2, cellValues(row)); err != nil {
			return destination.NewWriteError(d.path, err)
		}
	}

	if err := stream.Flush(); err != nil {
		return destination.NewWriteError(d.path, err)
	}

	if err := workbook.SaveAs(d.path); err != nil {
		return destination.NewWriteError(d.path, err)
	}

	log.Debug("workbook written", "path", d.path, "sheet", sheet, "rows", data.Len())
	return nil
}

func setRow(stream *excelize.StreamWriter, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	return stream.SetRow(cell, values)
}

// cellValues keeps numbers numeric so spreadsheets can sort and sum them, and turns
// missing values into empty cells.
func cellValues(row []any) []any {
	values := make([]any, len(row))
	for idx, value := range row {
		switch v := value.(type) {
		case int64, string:
			values[idx] = v
		case float64:
			if table.IsMissing(v) {
				values[idx] = ""
				continue
			}
			values[idx] = v
		default:
			values[idx] = table.CellString(v)
		}
	}

	return values
}
