// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"testing"

	"github.com/kkokgo/masterdb/internal/source"
)

var _ source.Source = &FakeSource{}

// FakeSource returns fixed tables or a fixed error and counts how many times it was loaded.
type FakeSource struct {
	tb   testing.TB
	data *source.Data
	err  error

	Loads int
}

// NewFakeSource returns a source always returning data.
func NewFakeSource(tb testing.TB, data *source.Data) *FakeSource {
	tb.Helper()
	return &FakeSource{tb: tb, data: data}
}

// NewFakeSourceWithError returns a source always failing with err.
func NewFakeSourceWithError(tb testing.TB, err error) *FakeSource {
	tb.Helper()
	return &FakeSource{tb: tb, err: err}
}

func (f *FakeSource) Load(ctx context.Context) (*source.Data, error) {
	f.tb.Helper()
	f.Loads++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}

	return f.data, nil
}
