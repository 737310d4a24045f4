// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerInContext(t *testing.T) {
	t.Parallel()

	t.Run("from nil context return null logger", func(t *testing.T) {
		t.Parallel()
		var ctx context.Context = nil
		assert.Equal(t, nullLogger, FromContext(ctx))
	})

	t.Run("from empty context return null logger", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, nullLogger, FromContext(t.Context()))
	})

	t.Run("context with a logger return that logger", func(t *testing.T) {
		t.Parallel()

		log := NewLogger(new(bytes.Buffer))
		ctx := WithContext(t.Context(), log)
		assert.Equal(t, log, FromContext(ctx))
	})

	t.Run("named logger carries the name", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		ctx := WithContext(t.Context(), NewLogger(buffer))
		Named(ctx, "masterdb:test").Info("hello")

		line := make(map[string]any)
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &line))
		assert.Equal(t, "masterdb:test", line["@module"])
		assert.Equal(t, "hello", line["@message"])
	})
}
