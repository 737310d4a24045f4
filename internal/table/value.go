// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package table

import (
	"fmt"
	"math"
	"strconv"
)

const missingString = "nan"

// String returns the textual form of a cell value: integers in decimal, floats in
// their shortest form keeping a ".0" on integral values, strings unchanged and
// missing values as "nan".
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return missingString
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return formatFloat(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CellString returns the form used when a value is written to a file. It differs
// from String only for missing values, which are written as empty cells.
func CellString(value any) string {
	if IsMissing(value) {
		return ""
	}

	return String(value)
}

// IsMissing reports whether value represents a missing cell.
func IsMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	default:
		return false
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return missingString
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if f == math.Trunc(f) && abs < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	if abs >= 1e-4 && abs < 1e16 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
