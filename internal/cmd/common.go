// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/kkokgo/masterdb/internal/source"
)

// handleError will do custom print error handling based on the type of error received.
// It always returns the original error so that the process exits with a non zero code.
func handleError(cmd *cobra.Command, err error) error {
	var missingInput *source.MissingInputError
	switch {
	case errors.As(err, &missingInput):
		cmd.PrintErrln(missingInput)
		cmd.PrintErrf("no output has been written, add the missing file to %q and run the command again\n", missingInput.Dir)
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// noArgs rejects any positional argument printing the command usage.
func noArgs(cmd *cobra.Command, args []string) error {
	err := cobra.NoArgs(cmd, args)
	if err != nil {
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
	}

	return err
}
