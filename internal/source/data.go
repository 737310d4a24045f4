// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import "github.com/kkokgo/masterdb/internal/table"

// Data groups the tables loaded by a source.
type Data struct {
	// Schools is the high school directory.
	Schools *table.Table
	// Majors is the merged listing of the majors offered by each school.
	Majors *table.Table
}
