// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package events

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Fields of an event record, in the order they are checked.
const (
	FieldTitle    = "title"
	FieldDate     = "date"
	FieldLocation = "location"
	FieldLink     = "link"
)

// RequiredFields is the exact set of keys every event record carries.
var RequiredFields = []string{FieldTitle, FieldDate, FieldLocation, FieldLink}

const titlePreviewLength = 50

var urlPattern = regexp.MustCompile(`^https?://`)

// Option configures a Validator.
type Option func(*Validator)

// WithSchema adds a JSON Schema pass after the built-in checks.
func WithSchema(schema *SchemaChecker) Option {
	return func(v *Validator) {
		v.schema = schema
	}
}

// Validator checks event documents. The zero value is ready to use.
type Validator struct {
	schema *SchemaChecker
}

// NewValidator returns a validator configured with the given options.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks a document with the built-in rules only.
func Validate(raw []byte) Result {
	var v Validator
	return v.Validate(raw)
}

// Validate checks that raw is a JSON array of event records and reports every
// finding. Parse and shape errors stop the validation.
func (v *Validator) Validate(raw []byte) Result {
	var c collector

	doc, err := decodeDocument(raw)
	if err != nil {
		c.errorf(KindParse, DocumentIndex, "", "Invalid JSON syntax: %v", err)
		return c.result()
	}

	records, ok := doc.([]any)
	if !ok {
		c.errorf(KindShape, DocumentIndex, "", "Root element should be an array, got %s", kindOf(doc))
		return c.result()
	}

	c.records = len(records)
	for i, record := range records {
		checkRecord(&c, i, record)
	}
	checkDuplicates(&c, records)

	if v.schema != nil {
		v.schema.check(&c, doc)
	}
	return c.result()
}

func checkRecord(c *collector, index int, record any) {
	event, ok := record.(map[string]any)
	if !ok {
		c.errorf(KindRecordType, index, "", "Should be an object, got %s", kindOf(record))
		return
	}

	var missing []string
	for _, field := range RequiredFields {
		if _, found := event[field]; !found {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		c.errorf(KindMissingField, index, "", "Missing required fields: %s", strings.Join(missing, ", "))
	}

	var extra []string
	for key := range event {
		if !isRequiredField(key) {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		c.warnf(KindExtraField, index, "", "Contains extra fields: %s", strings.Join(extra, ", "))
	}

	if value, found := event[FieldTitle]; found {
		checkTitle(c, index, value)
	}
	if value, found := event[FieldDate]; found {
		checkDate(c, index, value)
	}
	if value, found := event[FieldLocation]; found {
		checkLocation(c, index, value)
	}
	if value, found := event[FieldLink]; found {
		checkLink(c, index, value)
	}
}

func isRequiredField(key string) bool {
	for _, field := range RequiredFields {
		if key == field {
			return true
		}
	}
	return false
}

func checkTitle(c *collector, index int, value any) {
	title, ok := value.(string)
	switch {
	case !ok:
		c.errorf(KindTypeMismatch, index, FieldTitle, "Title should be a string")
	case urlPattern.MatchString(title):
		c.errorf(KindContent, index, FieldTitle, "Title contains a URL instead of text: '%s...'", truncate(title, titlePreviewLength))
	case strings.TrimSpace(title) == "":
		c.errorf(KindContent, index, FieldTitle, "Title is empty")
	}
}

func checkDate(c *collector, index int, value any) {
	date, ok := value.(string)
	if !ok {
		c.errorf(KindTypeMismatch, index, FieldDate, "Date should be a string")
		return
	}
	if _, err := ParseDate(date, time.UTC); err != nil {
		c.errorf(KindContent, index, FieldDate, "Invalid date format '%s' (expected ISO 8601)", date)
	}
}

func checkLocation(c *collector, index int, value any) {
	location, ok := value.(string)
	switch {
	case !ok:
		c.errorf(KindTypeMismatch, index, FieldLocation, "Location should be a string")
	case strings.TrimSpace(location) == "":
		c.warnf(KindEmptyField, index, FieldLocation, "Location is empty")
	}
}

func checkLink(c *collector, index int, value any) {
	link, ok := value.(string)
	switch {
	case !ok:
		c.errorf(KindTypeMismatch, index, FieldLink, "Link should be a string")
	case !urlPattern.MatchString(link):
		c.errorf(KindContent, index, FieldLink, "Link doesn't appear to be a valid URL: '%s'", link)
	}
}

// eventKey identifies an event for duplicate detection. Absent fields count as
// empty strings.
type eventKey struct {
	title, date keyPart
}

type keyPart struct {
	kind valueKind
	text string
}

var emptyEventKey = eventKey{
	title: keyPart{kind: kindString},
	date:  keyPart{kind: kindString},
}

func checkDuplicates(c *collector, records []any) {
	seen := make(map[eventKey]struct{})
	for i, record := range records {
		event, ok := record.(map[string]any)
		if !ok {
			continue
		}
		key := eventKey{
			title: keyPartOf(event, FieldTitle),
			date:  keyPartOf(event, FieldDate),
		}
		if _, found := seen[key]; found && key != emptyEventKey {
			c.warnf(KindDuplicate, i, "", "Duplicate event (same title and date)")
		}
		seen[key] = struct{}{}
	}
}

func keyPartOf(event map[string]any, field string) keyPart {
	value, found := event[field]
	if !found {
		return keyPart{kind: kindString}
	}
	kind := kindOf(value)
	switch v := value.(type) {
	case string:
		return keyPart{kind: kind, text: v}
	case json.Number:
		// Equal numbers collide whatever their spelling (1, 1.0, 1e0).
		if f, err := v.Float64(); err == nil {
			return keyPart{kind: kind, text: strconv.FormatFloat(f, 'g', -1, 64)}
		}
		return keyPart{kind: kind, text: v.String()}
	default:
		text, err := json.Marshal(v)
		if err != nil {
			return keyPart{kind: kind}
		}
		return keyPart{kind: kind, text: string(text)}
	}
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
