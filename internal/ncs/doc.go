// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package ncs assigns an NCS vocational category to every school of the high school
// directory and serializes the result as the JSON document consumed by the web frontend.
//
// Categories are evaluated in the order declared by the rules; the first category with a
// matching rule wins and schools matching nothing get the fallback category.
package ncs
