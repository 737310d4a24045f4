// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkokgo/masterdb/internal/source"
	"github.com/kkokgo/masterdb/internal/table"
)

func TestFakeSource(t *testing.T) {
	t.Parallel()

	data := &source.Data{Schools: table.New("a"), Majors: table.New("b")}
	fake := NewFakeSource(t, data)

	loaded, err := fake.Load(t.Context())
	require.NoError(t, err)
	assert.Same(t, data, loaded)
	assert.Equal(t, 1, fake.Loads)
}

func TestFakeSourceWithError(t *testing.T) {
	t.Parallel()

	fake := NewFakeSourceWithError(t, assert.AnError)
	loaded, err := fake.Load(t.Context())
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, assert.AnError)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err = NewFakeSource(t, nil).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
