// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package destination defines where the merged table ends up.
// Destinations receive the whole table once the join is complete, so a failed load never
// leaves a partial output behind.
package destination
