// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package file implements the CSV file destination used for the master database.
// The file is only created when a table is sent and it replaces any previous version
// atomically, so readers never observe a half written file.
package file
