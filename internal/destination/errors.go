// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import "fmt"

var _ error = &WriteError{}

// WriteError wraps any failure happening while a destination persists a table.
type WriteError struct {
	Location string
	err      error
}

// NewWriteError returns a WriteError for location wrapping err.
func NewWriteError(location string, err error) *WriteError {
	return &WriteError{Location: location, err: err}
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %q: %s", e.Location, e.err)
}

func (e *WriteError) Unwrap() error {
	return e.err
}

func (e *WriteError) Is(target error) bool {
	we, ok := target.(*WriteError)
	if !ok {
		return false
	}

	return e.Location == we.Location
}
