// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	embeddedRulesName = "embedded rules"
)

var (
	// ErrParsing reports failures that occur while decoding rule files.
	ErrParsing = errors.New("error parsing")

	//go:embed ncs_rules.yaml
	defaultNCSRules []byte
)

// NCSRules lists the NCS categories in evaluation order and the category used when none matches.
type NCSRules struct {
	Categories []NCSCategory `json:"categories" yaml:"categories"`
	Fallback   NCSCategory   `json:"fallback" yaml:"fallback"`
}

// NCSCategory describes one NCS category and the rules selecting it.
type NCSCategory struct {
	Code  string    `json:"code" yaml:"code"`
	Name  string    `json:"name" yaml:"name"`
	Badge string    `json:"badge" yaml:"badge"`
	Rules []NCSRule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// NCSRule holds the keywords searched in the school name and in the school type.
// Lists left empty are not checked.
type NCSRule struct {
	NameContains []string `json:"nameContains,omitempty" yaml:"nameContains,omitempty"`
	TypeContains []string `json:"typeContains,omitempty" yaml:"typeContains,omitempty"`
}

// DefaultNCSRules returns the rules shipped with the binary.
func DefaultNCSRules() (*NCSRules, error) {
	return decodeNCSRules(bytes.NewReader(defaultNCSRules), embeddedRulesName)
}

// NewNCSRulesFromPath parses the YAML rule file at path.
func NewNCSRulesFromPath(path string) (*NCSRules, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return decodeNCSRules(file, path)
}

func decodeNCSRules(reader io.Reader, source string) (*NCSRules, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	rules := new(NCSRules)
	if err := decoder.Decode(rules); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w %q: empty rule file", ErrParsing, source)
		}
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, source, err)
	}

	if errorsList := rules.validate(); len(errorsList) > 0 {
		return nil, fmt.Errorf("%w %q: %s", ErrParsing, source, strings.Join(errorsList, "; "))
	}

	return rules, nil
}

func (r *NCSRules) validate() []string {
	errorsList := []string{}

	codes := make(map[string]struct{}, len(r.Categories)+1)
	checkCategory := func(position string, category NCSCategory) {
		if category.Code == "" {
			errorsList = append(errorsList, fmt.Sprintf("missing field 'code' in %s", position))
		}
		if category.Name == "" {
			errorsList = append(errorsList, fmt.Sprintf("missing field 'name' in %s", position))
		}
		if _, ok := codes[category.Code]; ok && category.Code != "" {
			errorsList = append(errorsList, fmt.Sprintf("duplicated code '%s' in %s", category.Code, position))
		}
		codes[category.Code] = struct{}{}
	}

	for idx, category := range r.Categories {
		position := fmt.Sprintf("categories[%d]", idx)
		checkCategory(position, category)

		if len(category.Rules) == 0 {
			errorsList = append(errorsList, fmt.Sprintf("no rules in %s", position))
		}
		for ruleIdx, rule := range category.Rules {
			errorsList = append(errorsList, rule.validate(fmt.Sprintf("%s.rules[%d]", position, ruleIdx))...)
		}
	}

	checkCategory("fallback", r.Fallback)
	if len(r.Fallback.Rules) > 0 {
		errorsList = append(errorsList, "fallback cannot have rules")
	}

	return errorsList
}

func (r NCSRule) validate(position string) []string {
	errorsList := []string{}
	if len(r.NameContains) == 0 && len(r.TypeContains) == 0 {
		errorsList = append(errorsList, fmt.Sprintf("empty rule in %s", position))
	}

	for _, keyword := range append(append([]string{}, r.NameContains...), r.TypeContains...) {
		if strings.TrimSpace(keyword) == "" {
			errorsList = append(errorsList, fmt.Sprintf("empty keyword in %s", position))
			break
		}
	}

	return errorsList
}
