// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package merger

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/kkokgo/masterdb/internal/table"
)

const (
	// DefaultAdminCodeColumn is the header of the administrative standard code column.
	DefaultAdminCodeColumn = "AdminStandardCode"
	// DefaultProvinceCodeColumn is the header of the province office code column.
	DefaultProvinceCodeColumn = "ProvinceOfficeCode"
	// DefaultSchoolSuffix is appended to school columns whose name is already used by the major table.
	DefaultSchoolSuffix = "_school"
)

// Options names the key columns and the suffix used to resolve column collisions.
type Options struct {
	AdminCodeColumn    string
	ProvinceCodeColumn string
	SchoolSuffix       string
}

// DefaultOptions returns the options matching the published datasets.
func DefaultOptions() Options {
	return Options{
		AdminCodeColumn:    DefaultAdminCodeColumn,
		ProvinceCodeColumn: DefaultProvinceCodeColumn,
		SchoolSuffix:       DefaultSchoolSuffix,
	}
}

func (o Options) validate() error {
	switch {
	case o.AdminCodeColumn == "" || o.ProvinceCodeColumn == "":
		return fmt.Errorf("%w: key column names cannot be empty", ErrInvalidOptions)
	case o.AdminCodeColumn == o.ProvinceCodeColumn:
		return fmt.Errorf("%w: key columns must be different, got %q twice", ErrInvalidOptions, o.AdminCodeColumn)
	case o.SchoolSuffix == "":
		return fmt.Errorf("%w: school suffix cannot be empty", ErrInvalidOptions)
	}

	return nil
}

func (o Options) keyColumns() []string {
	return []string{o.AdminCodeColumn, o.ProvinceCodeColumn}
}

// Normalize returns a copy of t where every value of column is replaced by its string form.
// Strings are kept as they are, so "01" and 1 stay different while 101 and "101" become equal.
func Normalize(t *table.Table, column string) (*table.Table, error) {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	normalized := &table.Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([][]any, len(t.Rows)),
	}
	for rowIdx, row := range t.Rows {
		cells := slices.Clone(row)
		cells[idx] = table.String(cells[idx])
		normalized.Rows[rowIdx] = cells
	}

	return normalized, nil
}

// Merge joins majors with schools and returns the combined table.
//
// The result contains every major column in its original order followed by the school
// columns that are not part of the key. A school column whose name is already used by a
// major column gets opts.SchoolSuffix appended. Rows follow the major order and, for the
// same major row, the school order. The key values are the major ones after normalization.
func Merge(schools, majors *table.Table, opts Options) (*table.Table, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if err := checkKeyColumns("school", schools, opts); err != nil {
		return nil, err
	}
	if err := checkKeyColumns("major", majors, opts); err != nil {
		return nil, err
	}

	schools, err := Normalize(schools, opts.AdminCodeColumn)
	if err != nil {
		return nil, err
	}
	majors, err = Normalize(majors, opts.AdminCodeColumn)
	if err != nil {
		return nil, err
	}

	return join(majors, schools, opts)
}

func checkKeyColumns(name string, t *table.Table, opts Options) error {
	for _, column := range opts.keyColumns() {
		if !t.HasColumn(column) {
			return fmt.Errorf("%w: %s table has no %q column", ErrMissingKeyColumn, name, column)
		}
	}

	return nil
}

// compositeKey identifies a school in both tables.
type compositeKey struct {
	adminCode    string
	provinceCode string
}

// join performs the inner join between left (majors) and right (schools). Both tables
// must already be normalized and must contain the key columns.
func join(left, right *table.Table, opts Options) (*table.Table, error) {
	leftAdmin, _ := left.ColumnIndex(opts.AdminCodeColumn)
	leftProvince, _ := left.ColumnIndex(opts.ProvinceCodeColumn)
	rightAdmin, _ := right.ColumnIndex(opts.AdminCodeColumn)
	rightProvince, _ := right.ColumnIndex(opts.ProvinceCodeColumn)

	columns, rightColumns, err := mergedColumns(left.Columns, right.Columns, opts)
	if err != nil {
		return nil, err
	}

	index := make(map[compositeKey][]int, len(right.Rows))
	for rowIdx, row := range right.Rows {
		key := compositeKey{
			adminCode:    table.String(row[rightAdmin]),
			provinceCode: matchToken(row[rightProvince]),
		}
		index[key] = append(index[key], rowIdx)
	}

	merged := table.New(columns...)
	for _, leftRow := range left.Rows {
		key := compositeKey{
			adminCode:    table.String(leftRow[leftAdmin]),
			provinceCode: matchToken(leftRow[leftProvince]),
		}

		for _, rightIdx := range index[key] {
			rightRow := right.Rows[rightIdx]
			row := make([]any, 0, len(columns))
			row = append(row, leftRow...)
			for _, colIdx := range rightColumns {
				row = append(row, rightRow[colIdx])
			}
			if err := merged.Append(row...); err != nil {
				return nil, err
			}
		}
	}

	return merged, nil
}

// mergedColumns returns the output header and the positions of the right columns that
// are appended after the left ones.
func mergedColumns(left, right []string, opts Options) ([]string, []int, error) {
	keys := opts.keyColumns()
	columns := slices.Clone(left)
	rightColumns := make([]int, 0, len(right))
	for idx, column := range right {
		if slices.Contains(keys, column) {
			continue
		}

		name := column
		if slices.Contains(left, column) {
			name = column + opts.SchoolSuffix
		}
		rightColumns = append(rightColumns, idx)
		columns = append(columns, name)
	}

	seen := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		if _, ok := seen[column]; ok {
			return nil, nil, fmt.Errorf("%w: %q appears more than once in the merged header", table.ErrDuplicateColumn, column)
		}
		seen[column] = struct{}{}
	}

	return columns, rightColumns, nil
}

// matchToken returns the comparison form of a value that is not normalized before the
// join. Numbers compare by value whatever their type, strings only match strings and
// missing values match each other.
func matchToken(value any) string {
	switch v := value.(type) {
	case nil:
		return "missing"
	case int64:
		return "number:" + strconv.FormatInt(v, 10)
	case int:
		return "number:" + strconv.Itoa(v)
	case float64:
		if math.IsNaN(v) {
			return "missing"
		}
		if v == math.Trunc(v) && math.Abs(v) < 1<<63 {
			return "number:" + strconv.FormatInt(int64(v), 10)
		}
		return "number:" + strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return "string:" + table.String(v)
	}
}
