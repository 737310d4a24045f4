// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"errors"
	"fmt"
)

// ErrMissingInput can be used with errors.Is to detect a *MissingInputError.
var ErrMissingInput = errors.New("missing input file")

var _ error = &MissingInputError{}

// MissingInputError reports an input file that cannot be opened.
type MissingInputError struct {
	// Dir is the data directory where the inputs are expected.
	Dir string
	// Path is the file that could not be opened.
	Path string

	err error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s %q: check that the input files are in the %q directory", ErrMissingInput, e.Path, e.Dir)
}

func (e *MissingInputError) Unwrap() error {
	return e.err
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}
