// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"testing"

	"github.com/kkokgo/masterdb/internal/destination"
	"github.com/kkokgo/masterdb/internal/table"
)

var (
	_ destination.Sender  = &FakeDestination{}
	_ destination.Locator = &FakeDestination{}
)

// FakeDestination keeps every table it receives in memory.
type FakeDestination struct {
	tb       testing.TB
	location string
	err      error

	SentData []*table.Table
}

func NewFakeDestination(tb testing.TB, location string) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb, location: location}
}

// NewFakeDestinationWithError returns a destination failing every Send with err.
func NewFakeDestinationWithError(tb testing.TB, err error) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb, err: err}
}

func (f *FakeDestination) Send(_ context.Context, data *table.Table) error {
	f.tb.Helper()
	if f.err != nil {
		return f.err
	}

	f.SentData = append(f.SentData, data)
	return nil
}

func (f *FakeDestination) Location() string {
	return f.location
}
