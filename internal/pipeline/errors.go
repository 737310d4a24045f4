// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import "errors"

// ErrInvalidPipeline is returned by New when the pipeline cannot be built.
var ErrInvalidPipeline = errors.New("invalid pipeline")

// invalidPipelineError describes why a pipeline cannot be built.
type invalidPipelineError struct {
	Message string
}

func (e *invalidPipelineError) Error() string {
	return ErrInvalidPipeline.Error() + ": " + e.Message
}

func (e *invalidPipelineError) Unwrap() error {
	return ErrInvalidPipeline
}
