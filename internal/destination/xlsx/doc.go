// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package xlsx implements a destination exporting the merged table as an Excel workbook.
package xlsx
