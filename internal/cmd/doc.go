// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package cmd contains the cobra commands exposed by masterdb.
// Commands take no arguments: every path and column name comes from the environment
// through the config package.
package cmd
