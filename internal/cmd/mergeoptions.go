// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/kkokgo/masterdb/internal/config"
	"github.com/kkokgo/masterdb/internal/destination"
	"github.com/kkokgo/masterdb/internal/destination/file"
	"github.com/kkokgo/masterdb/internal/destination/xlsx"
	"github.com/kkokgo/masterdb/internal/logger"
	"github.com/kkokgo/masterdb/internal/pipeline"
	"github.com/kkokgo/masterdb/internal/source"
)

const (
	mergeLoggerName = "masterdb:merge"
)

// mergeOptions holds everything needed to run the "merge" command.
type mergeOptions struct {
	config *config.Config
}

func newMergeOptions() (*mergeOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return &mergeOptions{config: cfg}, nil
}

// destinations returns the CSV destination followed by the optional spreadsheet export.
func (o *mergeOptions) destinations() []destination.Sender {
	destinations := []destination.Sender{file.NewDestination(o.config.OutputPath())}
	if path := o.config.XLSXOutputPath(); path != "" {
		destinations = append(destinations, xlsx.NewDestination(path))
	}

	return destinations
}

// execute runs the merge pipeline and reports the written files and the row count to out.
func (o *mergeOptions) execute(ctx context.Context, out io.Writer) error {
	log := logger.Named(ctx, mergeLoggerName)
	log.Debug("building master database", "dataDir", o.config.DataDir, "schools", o.config.SchoolPath(), "majors", o.config.MajorPath())

	src := source.NewFileSource(o.config.DataDir, o.config.SchoolPath(), o.config.MajorPath())
	p, err := pipeline.New(src, o.config.MergeOptions(), o.destinations()...)
	if err != nil {
		return err
	}

	result, err := p.Run(ctx)
	if err != nil {
		return err
	}

	for _, location := range result.Locations {
		fmt.Fprintf(out, "output file: %s\n", location)
	}
	fmt.Fprintf(out, "total rows: %d\n", result.Rows)
	return nil
}
