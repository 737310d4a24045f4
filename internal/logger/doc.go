// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps hclog behind the small interface used by every masterdb step.
// Loggers travel through the command context so the merge pipeline, the sources
// and the destinations all share the level and format chosen on the command line.
package logger
