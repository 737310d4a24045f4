// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package merger joins the major listing with the high school directory.
//
// The join is an inner join on the administrative standard code and the province office
// code: only majors offered by a school present in the directory survive, and a key that
// repeats on either side produces every matching pair. The administrative code is compared
// through its string form on both sides, the province office code is compared as loaded.
package merger
