// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkokgo/masterdb/internal/table"
)

func TestNewWriterDestination(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	testDestination := NewDestination(buffer)

	err := testDestination.Send(t.Context(), &table.Table{
		Columns: []string{"MajorName", "AdminStandardCode", "SchoolName"},
		Rows: [][]any{
			{"소프트웨어과", "7010123", "서울디지텍고"},
			{"게임과", "7010123", nil},
		},
	})
	require.NoError(t, err)

	expectedOutput := "\ufeffMajorName,AdminStandardCode,SchoolName\n" +
		"소프트웨어과,7010123,서울디지텍고\n" +
		"게임과,7010123,\n"

	assert.Equal(t, expectedOutput, buffer.String())
}
