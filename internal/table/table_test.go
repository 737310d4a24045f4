// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndex(t *testing.T) {
	t.Parallel()

	tbl := New("a", "b")
	idx, err := tbl.ColumnIndex("b")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = tbl.ColumnIndex("missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Equal(t, -1, idx)
	assert.EqualError(t, err, `column not found: "missing"`)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	tbl := New("a", "b", "c")
	require.NoError(t, tbl.Append("x"))
	require.NoError(t, tbl.Append("x", int64(1), 2.5))
	assert.ErrorIs(t, tbl.Append(1, 2, 3, 4), ErrMalformedRow)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []any{"x", nil, nil}, tbl.Rows[0])

	assert.Equal(t, map[string]any{"a": "x", "b": nil, "c": nil}, tbl.Record(0))
	assert.Equal(t, map[string]any{"a": "x", "b": int64(1), "c": 2.5}, tbl.Record(1))
}

func TestMangleHeader(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		columns  []string
		expected []string
	}{
		"unique names are untouched": {
			columns:  []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		"repeated names get a counter": {
			columns:  []string{"a", "a", "b", "a"},
			expected: []string{"a", "a.1", "b", "a.2"},
		},
		"counter skips names already present": {
			columns:  []string{"a", "a", "a.1"},
			expected: []string{"a", "a.1", "a.1.1"},
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, mangleHeader(test.columns))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value        any
		expected     string
		expectedCell string
	}{
		"nil":              {value: nil, expected: "nan", expectedCell: ""},
		"string":           {value: "01", expected: "01", expectedCell: "01"},
		"int64":            {value: int64(101), expected: "101", expectedCell: "101"},
		"int":              {value: 5, expected: "5", expectedCell: "5"},
		"integral float":   {value: 101.0, expected: "101.0", expectedCell: "101.0"},
		"fractional float": {value: 1.5, expected: "1.5", expectedCell: "1.5"},
		"tiny float":       {value: 0.00001, expected: "1e-05", expectedCell: "1e-05"},
		"huge float":       {value: 1e20, expected: "1e+20", expectedCell: "1e+20"},
		"NaN":              {value: math.NaN(), expected: "nan", expectedCell: ""},
		"infinity":         {value: math.Inf(-1), expected: "-inf", expectedCell: "-inf"},
		"bool":             {value: true, expected: "true", expectedCell: "true"},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, String(test.value))
			assert.Equal(t, test.expectedCell, CellString(test.value))
		})
	}
}
