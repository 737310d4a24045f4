// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package writer implements a destination that encodes the received table as CSV into
// the given io.Writer instance, byte order mark included.
// It backs the file destination and is handy for printing a table while inspecting data.
package writer
