// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kkokgo/masterdb/internal/destination"
	"github.com/kkokgo/masterdb/internal/logger"
	"github.com/kkokgo/masterdb/internal/merger"
	"github.com/kkokgo/masterdb/internal/source"
)

const (
	loggerName = "masterdb:pipeline"
)

// Result summarizes a completed run.
type Result struct {
	// RunID identifies the run in the logs.
	RunID string
	// Rows is the number of rows of the merged table.
	Rows int
	// Locations lists where the merged table has been written, in destination order.
	Locations []string
}

type Pipeline struct {
	source       source.Source
	options      merger.Options
	destinations []destination.Sender
}

// New returns a pipeline joining the tables of src with options and sending the result
// to every destination in order.
func New(src source.Source, options merger.Options, destinations ...destination.Sender) (*Pipeline, error) {
	if src == nil {
		return nil, &invalidPipelineError{Message: "no source configured"}
	}
	if len(destinations) == 0 {
		return nil, &invalidPipelineError{Message: "no destination configured"}
	}

	return &Pipeline{
		source:       src,
		options:      options,
		destinations: destinations,
	}, nil
}

// Run loads the inputs, joins them and writes the merged table.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).With("run_id", runID))
	log := logger.Named(ctx, loggerName)

	log.Trace("loading input data")
	data, err := p.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	log.Trace("merging tables", "schools", data.Schools.Len(), "majors", data.Majors.Len())
	merged, err := merger.Merge(data.Schools, data.Majors, p.options)
	if err != nil {
		return nil, fmt.Errorf("merging tables: %w", err)
	}
	log.Info("tables merged", "rows", merged.Len(), "columns", len(merged.Columns))
	if merged.Len() > 0 {
		log.Trace("first merged record", "record", merged.Record(0))
	}

	result := &Result{
		RunID:     runID,
		Rows:      merged.Len(),
		Locations: make([]string, 0, len(p.destinations)),
	}
	for _, dest := range p.destinations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := dest.Send(ctx, merged); err != nil {
			log.Error("error sending data to destination", "error", err)
			return nil, err
		}

		if locator, ok := dest.(destination.Locator); ok {
			result.Locations = append(result.Locations, locator.Location())
			log.Debug("data sent", "location", locator.Location())
		}
	}

	return result, nil
}
