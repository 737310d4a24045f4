// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package table holds the schema-less tabular representation shared by every masterdb step.
// Columns are discovered from the header row of the input file and cell types are inferred
// per column the same way the spreadsheet exports were read when the datasets were built:
// integer columns, float columns (also integer columns with blanks) and string columns.
// Reading strips an optional UTF-8 byte order mark, writing always adds one so that the
// resulting files open correctly in spreadsheet tools.
package table
