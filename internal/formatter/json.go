// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const indent = "    "

// JSONFormatter function is responsible for formatting the given JSON input.
// It keeps special HTML characters as they are and ends the document with a
// new line. The returned flag reports if the input was already formatted.
func JSONFormatter(content []byte) ([]byte, bool, error) {
	var compact bytes.Buffer
	err := json.Compact(&compact, content)
	if err != nil {
		return nil, false, fmt.Errorf("formatting JSON document failed: %w", err)
	}

	var formatted bytes.Buffer
	err = json.Indent(&formatted, compact.Bytes(), "", indent)
	if err != nil {
		return nil, false, fmt.Errorf("formatting JSON document failed: %w", err)
	}
	formatted.WriteByte('\n')

	return formatted.Bytes(), bytes.Equal(content, formatted.Bytes()), nil
}
