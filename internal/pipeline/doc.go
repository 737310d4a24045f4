// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline runs the master database build.
// A pipeline is composed of a source providing the school and major tables, the join
// options and one or more destinations receiving the merged table. The steps are strictly
// sequential: load, join, write. Nothing is written when loading or joining fails.
package pipeline
