// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package ncs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kkokgo/masterdb/internal/destination/file"
)

// Encode writes schools to w as an indented JSON array.
func Encode(w io.Writer, schools []School) error {
	if schools == nil {
		schools = []School{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(schools)
}

// WriteFile writes schools to path, creating its parent directory when missing. An
// existing file is replaced only once the whole document has been encoded.
func WriteFile(path string, schools []School) error {
	err := file.WriteFile(path, func(w io.Writer) error {
		return Encode(w, schools)
	})
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return nil
}
