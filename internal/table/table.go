// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package table

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrColumnNotFound is returned when a column name is not part of the table header.
	ErrColumnNotFound = errors.New("column not found")
	// ErrDuplicateColumn is returned when the same column name appears more than once in a header.
	ErrDuplicateColumn = errors.New("duplicate column")
)

// Table is an ordered set of named columns and the rows holding their values.
// Every row has exactly len(Columns) cells. A cell is nil (missing value), int64,
// float64 or string.
type Table struct {
	Columns []string
	Rows    [][]any
}

// New returns an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{
		Columns: slices.Clone(columns),
		Rows:    make([][]any, 0),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name in the header.
func (t *Table) ColumnIndex(name string) (int, error) {
	if idx := slices.Index(t.Columns, name); idx >= 0 {
		return idx, nil
	}

	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// Append adds a row, padding it with missing values or failing when it is longer than the header.
func (t *Table) Append(row ...any) error {
	if len(row) > len(t.Columns) {
		return fmt.Errorf("%w: row has %d fields, header has %d", ErrMalformedRow, len(row), len(t.Columns))
	}

	cells := make([]any, len(t.Columns))
	copy(cells, row)
	t.Rows = append(t.Rows, cells)
	return nil
}

// Record returns the row at idx as a column name to value map.
func (t *Table) Record(idx int) map[string]any {
	record := make(map[string]any, len(t.Columns))
	for colIdx, column := range t.Columns {
		record[column] = t.Rows[idx][colIdx]
	}

	return record
}

// mangleHeader renames repeated column names to "name.1", "name.2" and so on,
// keeping the first occurrence unchanged.
func mangleHeader(columns []string) []string {
	mangled := make([]string, 0, len(columns))
	seen := make(map[string]int, len(columns))
	for _, column := range columns {
		name := column
		for suffix := max(seen[column], 1); slices.Contains(mangled, name); suffix++ {
			name = fmt.Sprintf("%s.%d", column, suffix)
		}
		seen[column]++
		mangled = append(mangled, name)
	}

	return mangled
}
