// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package source reads the input datasets of the merge pipeline.
// The default implementation loads the high school directory and the major listing
// from CSV files inside the data directory.
package source
