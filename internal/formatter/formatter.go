// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package formatter

import (
	"errors"
	"fmt"
	"os"

	"github.com/elastic/events-validator/internal/logger"
)

// ErrNotFormatted is returned in fail-fast mode for files that require formatting.
var ErrNotFormatted = errors.New("file requires formatting")

// FormatFile formats the events file in place. In fail-fast mode the file is
// only checked. It returns true if the file was rewritten.
func FormatFile(path string, failFast bool) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading file content failed: %w", err)
	}

	formatted, alreadyFormatted, err := JSONFormatter(content)
	if err != nil {
		return false, fmt.Errorf("formatting file content failed: %w", err)
	}

	if alreadyFormatted {
		logger.Debugf("File %s is already formatted", path)
		return false, nil
	}

	if failFast {
		return false, fmt.Errorf("%s: %w", path, ErrNotFormatted)
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("reading file info failed: %w", err)
	}
	err = os.WriteFile(path, formatted, info.Mode().Perm())
	if err != nil {
		return false, fmt.Errorf("rewriting file failed: %w", err)
	}
	logger.Debugf("File %s formatted", path)
	return true, nil
}
