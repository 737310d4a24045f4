// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input           string
		expectedColumns []string
		expectedRows    [][]any
		expectedErr     error
	}{
		"integer columns": {
			input:           "code,office\n101,1\n0102,2\n",
			expectedColumns: []string{"code", "office"},
			expectedRows:    [][]any{{int64(101), int64(1)}, {int64(102), int64(2)}},
		},
		"integer column with blanks becomes float": {
			input:           "code,name\n101,a\n,b\n",
			expectedColumns: []string{"code", "name"},
			expectedRows:    [][]any{{101.0, "a"}, {nil, "b"}},
		},
		"mixed ints and floats": {
			input:           "value\n1\n2.5\n",
			expectedColumns: []string{"value"},
			expectedRows:    [][]any{{1.0}, {2.5}},
		},
		"string column keeps leading zeros": {
			input:           "code\n01\nB10\n",
			expectedColumns: []string{"code"},
			expectedRows:    [][]any{{"01"}, {"B10"}},
		},
		"missing tokens in string column": {
			input:           "name\nN/A\nx\n",
			expectedColumns: []string{"name"},
			expectedRows:    [][]any{{nil}, {"x"}},
		},
		"short rows are padded": {
			input:           "a,b,c\nx,y\n",
			expectedColumns: []string{"a", "b", "c"},
			expectedRows:    [][]any{{"x", "y", nil}},
		},
		"byte order mark is removed": {
			input:           "\ufeff학교명,code\n서울고,1\n",
			expectedColumns: []string{"학교명", "code"},
			expectedRows:    [][]any{{"서울고", int64(1)}},
		},
		"header only": {
			input:           "a,b\n",
			expectedColumns: []string{"a", "b"},
			expectedRows:    [][]any{},
		},
		"duplicated header names": {
			input:           "a,a\n1,x\n",
			expectedColumns: []string{"a", "a.1"},
			expectedRows:    [][]any{{int64(1), "x"}},
		},
		"empty input": {
			input:       "",
			expectedErr: ErrEmptyInput,
		},
		"long rows are rejected": {
			input:       "a\n1,2\n",
			expectedErr: ErrMalformedRow,
		},
		"quotes inside unquoted fields are literal": {
			input:           "AdminStandardCode,ProvinceOfficeCode,SchoolName\n1,A,서울 \"미래\" 고\n",
			expectedColumns: []string{"AdminStandardCode", "ProvinceOfficeCode", "SchoolName"},
			expectedRows:    [][]any{{int64(1), "A", "서울 \"미래\" 고"}},
		},
		"cp949 encoded rows are rejected": {
			input:       "code,name\n1,\xbc\xad\xbf\xef\n",
			expectedErr: ErrInvalidEncoding,
		},
		"cp949 encoded header is rejected": {
			input:       "\xc7\xd0\xb1\xb3\xb8\xed,code\n\xbc\xad\xbf\xef,1\n",
			expectedErr: ErrInvalidEncoding,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tbl, err := Read(strings.NewReader(test.input))
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				assert.Nil(t, tbl)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectedColumns, tbl.Columns)
			assert.Equal(t, test.expectedRows, tbl.Rows)
		})
	}
}

func TestReadInvalidEncodingPosition(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input       string
		expectedErr string
	}{
		"invalid header": {
			input:       "code,\xc7\xd0\xb1\xb3\xb8\xed\n1,a\n",
			expectedErr: "input is not valid UTF-8: line 1, column 6",
		},
		"invalid field after valid rows": {
			input:       "\ufeffcode,name\n1,서울고\n2,\xbc\xad\xbf\xef\n",
			expectedErr: "input is not valid UTF-8: line 3, column 3",
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tbl, err := Read(strings.NewReader(test.input))
			assert.Nil(t, tbl)
			assert.EqualError(t, err, test.expectedErr)
		})
	}
}

func TestReadFixture(t *testing.T) {
	t.Parallel()

	file, err := os.Open(filepath.Join("testdata", "school.csv"))
	require.NoError(t, err)
	defer file.Close()

	tbl, err := Read(file)
	require.NoError(t, err)

	assert.Equal(t, []string{"AdminStandardCode", "ProvinceOfficeCode", "SchoolName", "Students"}, tbl.Columns)
	assert.Equal(t, [][]any{
		{int64(1), "B10", "서울디지텍고등학교", 320.0},
		{int64(7010123), "B10", "Mirae, Tech", nil},
	}, tbl.Rows)
}
