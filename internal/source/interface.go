// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"context"
)

// Source loads the datasets joined by the merge pipeline.
type Source interface {
	// Load returns both tables or an error if any of them cannot be read. A *MissingInputError
	// is returned when an input cannot be opened.
	Load(ctx context.Context) (*Data, error)
}
