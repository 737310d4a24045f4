// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package ncs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kkokgo/masterdb/internal/config"
	"github.com/kkokgo/masterdb/internal/table"
)

var (
	ErrMissingNameColumn = errors.New("school name column not found")
)

// School is a classified school as serialized in the JSON output.
type School struct {
	ID            int    `json:"id"`
	SchoolName    string `json:"school_name"`
	Type          string `json:"type"`
	Address       string `json:"address"`
	Homepage      string `json:"homepage"`
	NCSCode       string `json:"ncs_code"`
	NCSName       string `json:"ncs_name"`
	NCSBadgeLabel string `json:"ncs_badge_label"`
}

// Columns names the directory columns read by Classify. Only Name is required, the
// other fields are left empty when their column is absent.
type Columns struct {
	Name     string
	Type     string
	Address  string
	Homepage string
}

type Classifier struct {
	rules *config.NCSRules
}

func NewClassifier(rules *config.NCSRules) *Classifier {
	return &Classifier{rules: rules}
}

// Category returns the category assigned to a school with the given name and type.
func (c *Classifier) Category(name, schoolType string) config.NCSCategory {
	name = strings.TrimSpace(name)
	schoolType = strings.TrimSpace(schoolType)

	for _, category := range c.rules.Categories {
		for _, rule := range category.Rules {
			if ruleMatches(rule, name, schoolType) {
				return category
			}
		}
	}

	return c.rules.Fallback
}

// Classify returns one School for every row of tbl with a non empty name. The id of a
// school is the position of its row in the directory, starting from 1.
func (c *Classifier) Classify(tbl *table.Table, columns Columns) ([]School, error) {
	nameIdx, err := tbl.ColumnIndex(columns.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingNameColumn, err)
	}
	typeIdx := optionalIndex(tbl, columns.Type)
	addressIdx := optionalIndex(tbl, columns.Address)
	homepageIdx := optionalIndex(tbl, columns.Homepage)

	schools := make([]School, 0, tbl.Len())
	for rowIdx, row := range tbl.Rows {
		name := field(row, nameIdx)
		if name == "" {
			continue
		}

		schoolType := field(row, typeIdx)
		category := c.Category(name, schoolType)
		schools = append(schools, School{
			ID:            rowIdx + 1,
			SchoolName:    name,
			Type:          schoolType,
			Address:       field(row, addressIdx),
			Homepage:      field(row, homepageIdx),
			NCSCode:       category.Code,
			NCSName:       category.Name,
			NCSBadgeLabel: category.Badge,
		})
	}

	return schools, nil
}

// ruleMatches reports whether every keyword list declared by rule has a keyword contained
// in the corresponding value.
func ruleMatches(rule config.NCSRule, name, schoolType string) bool {
	if len(rule.NameContains) > 0 && !containsAny(name, rule.NameContains) {
		return false
	}
	if len(rule.TypeContains) > 0 && !containsAny(schoolType, rule.TypeContains) {
		return false
	}

	return len(rule.NameContains) > 0 || len(rule.TypeContains) > 0
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}

	return false
}

func optionalIndex(tbl *table.Table, column string) int {
	if column == "" {
		return -1
	}

	idx, err := tbl.ColumnIndex(column)
	if err != nil {
		return -1
	}
	return idx
}

func field(row []any, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(table.CellString(row[idx]))
}
