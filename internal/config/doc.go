// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the masterdb settings.
// File locations and column names come from MASTERDB_* environment variables, optionally
// seeded from a .env file, and default to the layout of the data directory used to build
// the master database. NCS classification rules are read from YAML files.
package config
