// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("no columns to parse from file")
	// ErrMalformedRow is returned when a row has more fields than the header.
	ErrMalformedRow = errors.New("malformed row")
	// ErrInvalidEncoding is returned when the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// missingTokens are the cell contents read as missing values.
var missingTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

type columnKind int

const (
	kindEmpty columnKind = iota
	kindInt
	kindFloat
	kindString
)

// Read parses CSV data with a header row from r and infers the type of every column.
// A leading UTF-8 byte order mark is discarded. Quotes inside unquoted fields are kept
// as literal text, while bytes that are not valid UTF-8 make the whole read fail.
func Read(r io.Reader) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}
	if err := validateEncoding(reader, header); err != nil {
		return nil, err
	}

	columns := mangleHeader(header)
	raw := make([][]string, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := validateEncoding(reader, record); err != nil {
			return nil, err
		}

		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d", ErrMalformedRow, line, len(record), len(columns))
		}

		padded := make([]string, len(columns))
		copy(padded, record)
		raw = append(raw, padded)
	}

	kinds := make([]columnKind, len(columns))
	for col := range columns {
		kinds[col] = inferKind(raw, col)
	}

	table := New(columns...)
	for _, record := range raw {
		row := make([]any, len(columns))
		for col, kind := range kinds {
			row[col] = convert(record[col], kind)
		}
		if err := table.Append(row...); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// inferKind scans a column and returns the narrowest kind able to hold every value.
func inferKind(raw [][]string, col int) columnKind {
	kind := kindEmpty
	hasMissing := false
	for _, record := range raw {
		value := record[col]
		if isMissingToken(value) {
			hasMissing = true
			continue
		}

		switch {
		case kind <= kindInt && parsesAsInt(value):
			kind = kindInt
		case kind <= kindFloat && parsesAsFloat(value):
			kind = kindFloat
		default:
			return kindString
		}
	}

	if kind == kindInt && hasMissing {
		return kindFloat
	}

	return kind
}

func convert(value string, kind columnKind) any {
	if isMissingToken(value) {
		return nil
	}

	switch kind {
	case kindInt:
		i, _ := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		return i
	case kindFloat:
		f, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return f
	default:
		return value
	}
}

func isMissingToken(value string) bool {
	_, ok := missingTokens[value]
	return ok
}

func parsesAsInt(value string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	return err == nil
}

func parsesAsFloat(value string) bool {
	trimmed := strings.TrimSpace(value)
	if strings.ContainsAny(trimmed, "xX_") {
		return false
	}

	_, err := strconv.ParseFloat(trimmed, 64)
	return err == nil
}

// validateEncoding reports the position of the first field of record that is not valid UTF-8.
func validateEncoding(reader *csv.Reader, record []string) error {
	for idx, field := range record {
		if !utf8.ValidString(field) {
			line, column := reader.FieldPos(idx)
			return fmt.Errorf("%w: line %d, column %d", ErrInvalidEncoding, line, column)
		}
	}

	return nil
}
