// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package report renders validation results through registered formats and
// delivers them through registered outputs.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/elastic/events-validator/internal/events"
)

// UnknownSize marks a report whose input size is not known.
const UnknownSize int64 = -1

// Report is the validation result of a single file.
type Report struct {
	File   string
	Size   int64
	Result events.Result
}

// Format represents a report format.
type Format string

// FormatFunc defines the report formatter function.
type FormatFunc func(r Report) (string, error)

// Output represents an output for a report.
type Output string

// OutputFunc defines the report writer function. Outputs print any message
// for the user to w.
type OutputFunc func(w io.Writer, r Report, content string, format Format) error

var (
	formats = map[Format]FormatFunc{}
	outputs = map[Output]OutputFunc{}
)

// RegisterFormat registers a report formatter.
func RegisterFormat(name Format, formatFunc FormatFunc) {
	formats[name] = formatFunc
}

// RegisterOutput registers a report output.
func RegisterOutput(name Output, outputFunc OutputFunc) {
	outputs[name] = outputFunc
}

// FormatReport delegates formatting of the report to the registered formatter.
func FormatReport(name Format, r Report) (string, error) {
	formatFunc, defined := formats[name]
	if !defined {
		return "", fmt.Errorf("unregistered report format: %s", name)
	}
	return formatFunc(r)
}

// WriteReport delegates writing of the formatted report to the registered output.
func WriteReport(name Output, w io.Writer, r Report, content string, format Format) error {
	outputFunc, defined := outputs[name]
	if !defined {
		return fmt.Errorf("unregistered report output: %s", name)
	}
	return outputFunc(w, r, content, format)
}

// FormatsList returns the names of the registered formats.
func FormatsList() []string {
	var names []string
	for name := range formats {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// OutputsList returns the names of the registered outputs.
func OutputsList() []string {
	var names []string
	for name := range outputs {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
