// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	mergeCmdUsage = "merge"
	mergeCmdShort = "build the master database joining schools and majors"
	mergeCmdLong  = `Build the master database joining the high school directory and the
	merged major listing on the AdminStandardCode and ProvinceOfficeCode columns.

	Only the majors offered by a school present in the directory are kept. Columns
	of the school directory with the same name of a major column are suffixed with
	"_school". The result is written as a CSV file encoded in UTF-8 with a byte order
	mark and, when MASTERDB_XLSX_OUTPUT_FILE is set, as an Excel workbook.

	Inputs and output are read and written in the data directory (src/data by default):
	- highschoolinfo.csv: the high school directory
	- all_major_info_merged.csv: the merged major listing
	- kkokgo_master_db.csv: the master database`

	mergeCmdExample = `# Build the master database from the default src/data directory
	masterdb merge

	# Build the master database reading the inputs from another directory
	MASTERDB_DATA_DIR=./data masterdb merge`

	classifyCmdUsage = "classify"
	classifyCmdShort = "assign an NCS category to every high school"
	classifyCmdLong  = `Assign an NCS vocational category to every school of the high school
	directory and save the result as a JSON array in the data directory.

	Categories are selected by keywords found in the school name and type; the
	rules shipped with masterdb can be replaced with a YAML file referenced by the
	MASTERDB_NCS_RULES_FILE environment variable.`

	classifyCmdExample = `# Classify the schools of src/data/highschoolinfo.csv into src/data/schools.json
	masterdb classify

	# Classify using custom rules
	MASTERDB_NCS_RULES_FILE=rules.yaml masterdb classify`
)

// MergeCmd returns the "merge" cli command building the master database.
func MergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     mergeCmdUsage,
		Short:   heredoc.Doc(mergeCmdShort),
		Long:    heredoc.Doc(mergeCmdLong),
		Example: heredoc.Doc(mergeCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              noArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := newMergeOptions()
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	return cmd
}

// ClassifyCmd returns the "classify" cli command writing the NCS classified schools.
func ClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     classifyCmdUsage,
		Short:   heredoc.Doc(classifyCmdShort),
		Long:    heredoc.Doc(classifyCmdLong),
		Example: heredoc.Doc(classifyCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              noArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := newClassifyOptions()
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	return cmd
}
