// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package multierror

import (
	"fmt"
	"strings"
)

// Error is a multi-error representation.
type Error []error

// Error combines a detailed report consisting of attached errors separated with new lines.
func (me Error) Error() string {
	if me == nil {
		return ""
	}

	strs := make([]string, len(me))
	for i, err := range me {
		strs[i] = fmt.Sprintf("[%d] %v", i, err)
	}
	return strings.Join(strs, "\n")
}

// Unwrap exposes the attached errors to errors.Is and errors.As.
func (me Error) Unwrap() []error {
	return me
}

// Unique returns the attached errors without repeated messages, keeping the first occurrence.
func (me Error) Unique() Error {
	var unique Error
	seen := map[string]struct{}{}
	for _, err := range me {
		if _, found := seen[err.Error()]; found {
			continue
		}
		seen[err.Error()] = struct{}{}
		unique = append(unique, err)
	}
	return unique
}

// ErrorOrNil returns nil when no errors are attached, so the result can be returned as an error.
func (me Error) ErrorOrNil() error {
	if len(me) == 0 {
		return nil
	}
	return me
}
