// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package events

import "fmt"

// Severity of a finding.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name, so reports carry "error" and "warning".
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind classifies a finding.
type Kind string

const (
	KindParse        Kind = "parse"
	KindShape        Kind = "shape"
	KindRecordType   Kind = "record-type"
	KindMissingField Kind = "missing-field"
	KindTypeMismatch Kind = "type-mismatch"
	KindContent      Kind = "content"
	KindExtraField   Kind = "extra-field"
	KindEmptyField   Kind = "empty-field"
	KindDuplicate    Kind = "duplicate"
	KindFileNotFound Kind = "file-not-found"
	KindUnexpected   Kind = "unexpected"
	KindSchema       Kind = "schema"
)

// Terminal reports whether a finding of this kind stops the validation.
func (k Kind) Terminal() bool {
	switch k {
	case KindParse, KindShape, KindFileNotFound, KindUnexpected:
		return true
	}
	return false
}

// DocumentIndex is the index used by findings that are not bound to a record.
const DocumentIndex = -1

// Finding is a single reported issue.
type Finding struct {
	Severity Severity `json:"severity"`
	Kind     Kind     `json:"kind"`
	Index    int      `json:"index"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Severity, f.Message)
}

// Result is the outcome of validating one document.
type Result struct {
	Valid    bool      `json:"valid"`
	// Records is the number of array elements, zero when the root is not an array.
	Records  int       `json:"records"`
	Findings []Finding `json:"findings"`
}

// Errors returns the number of error findings.
func (r Result) Errors() int {
	return r.count(SeverityError)
}

// Warnings returns the number of warning findings.
func (r Result) Warnings() int {
	return r.count(SeverityWarning)
}

func (r Result) count(severity Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// FileNotFound builds the terminal result for a missing input file.
func FileNotFound(name string) Result {
	return terminal(KindFileNotFound, fmt.Sprintf("File '%s' not found", name))
}

// Unexpected builds the terminal result for any other failure while reading or validating.
func Unexpected(err error) Result {
	return terminal(KindUnexpected, fmt.Sprintf("Unexpected error: %v", err))
}

func terminal(kind Kind, message string) Result {
	return Result{
		Valid: false,
		Findings: []Finding{{
			Severity: SeverityError,
			Kind:     kind,
			Index:    DocumentIndex,
			Message:  message,
		}},
	}
}

// collector accumulates findings in the order they are produced.
type collector struct {
	records  int
	findings []Finding
}

func (c *collector) errorf(kind Kind, index int, field, format string, a ...any) {
	c.add(SeverityError, kind, index, field, fmt.Sprintf(format, a...))
}

func (c *collector) warnf(kind Kind, index int, field, format string, a ...any) {
	c.add(SeverityWarning, kind, index, field, fmt.Sprintf(format, a...))
}

func (c *collector) add(severity Severity, kind Kind, index int, field, message string) {
	if index != DocumentIndex {
		message = fmt.Sprintf("Item %d: %s", index, message)
	}
	c.findings = append(c.findings, Finding{
		Severity: severity,
		Kind:     kind,
		Index:    index,
		Field:    field,
		Message:  message,
	})
}

func (c *collector) result() Result {
	r := Result{Records: c.records, Findings: c.findings}
	r.Valid = r.Errors() == 0
	return r
}
