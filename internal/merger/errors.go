// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package merger

import "errors"

var (
	// ErrInvalidOptions is returned when the join options cannot describe a valid key.
	ErrInvalidOptions = errors.New("invalid merge options")
	// ErrMissingKeyColumn is returned when a table lacks one of the key columns.
	ErrMissingKeyColumn = errors.New("missing key column")
)
