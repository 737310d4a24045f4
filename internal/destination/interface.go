// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"context"

	"github.com/kkokgo/masterdb/internal/table"
)

// Sender delivers a complete table to a destination.
type Sender interface {
	Send(ctx context.Context, data *table.Table) error
}

// Locator is implemented by destinations that can tell where the data has been written.
type Locator interface {
	Location() string
}
