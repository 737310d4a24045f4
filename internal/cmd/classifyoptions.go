// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/kkokgo/masterdb/internal/config"
	"github.com/kkokgo/masterdb/internal/logger"
	"github.com/kkokgo/masterdb/internal/ncs"
	"github.com/kkokgo/masterdb/internal/source"
)

const (
	classifyLoggerName = "masterdb:classify"
)

// classifyOptions holds everything needed to run the "classify" command.
type classifyOptions struct {
	config *config.Config
	rules  *config.NCSRules
}

func newClassifyOptions() (*classifyOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return nil, err
	}

	return &classifyOptions{
		config: cfg,
		rules:  rules,
	}, nil
}

// loadRules returns the rules from the configured file or the embedded ones.
func loadRules(cfg *config.Config) (*config.NCSRules, error) {
	if cfg.NCSRulesFile == "" {
		return config.DefaultNCSRules()
	}

	return config.NewNCSRulesFromPath(cfg.NCSRulesFile)
}

func (o *classifyOptions) columns() ncs.Columns {
	return ncs.Columns{
		Name:     o.config.SchoolNameColumn,
		Type:     o.config.SchoolTypeColumn,
		Address:  o.config.AddressColumn,
		Homepage: o.config.HomepageColumn,
	}
}

// execute classifies the school directory and writes the JSON document.
func (o *classifyOptions) execute(ctx context.Context, out io.Writer) error {
	log := logger.Named(ctx, classifyLoggerName)

	directory, err := source.ReadFile(ctx, o.config.DataDir, o.config.ClassifySourcePath())
	if err != nil {
		return err
	}

	schools, err := ncs.NewClassifier(o.rules).Classify(directory, o.columns())
	if err != nil {
		return fmt.Errorf("classifying %q: %w", o.config.ClassifySourcePath(), err)
	}
	log.Debug("schools classified", "rows", directory.Len(), "schools", len(schools))

	outputPath := o.config.SchoolsJSONPath()
	if err := ncs.WriteFile(outputPath, schools); err != nil {
		return err
	}
	log.Info("classified schools written", "path", outputPath)

	fmt.Fprintf(out, "output file: %s\n", outputPath)
	fmt.Fprintf(out, "total schools: %d\n", len(schools))
	return nil
}
