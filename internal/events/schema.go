// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package events

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/elastic/gojsonschema"
)

//go:embed _static/events.schema.json
var eventsSchema []byte

// EventsSchema returns the JSON Schema describing an events document.
func EventsSchema() []byte {
	return append([]byte(nil), eventsSchema...)
}

// SchemaChecker validates documents against a JSON Schema.
type SchemaChecker struct {
	schema *gojsonschema.Schema
}

// NewSchemaChecker compiles the given JSON Schema.
func NewSchemaChecker(schema []byte) (*SchemaChecker, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compiling JSON schema failed: %w", err)
	}
	return &SchemaChecker{schema: s}, nil
}

func (s *SchemaChecker) check(c *collector, doc any) {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		c.errorf(KindSchema, DocumentIndex, "", "Schema validation failed: %v", err)
		return
	}

	violations := result.Errors()
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Field() != violations[j].Field() {
			return violations[i].Field() < violations[j].Field()
		}
		return violations[i].Description() < violations[j].Description()
	})
	for _, v := range violations {
		index, field := splitSchemaField(v.Field())
		c.errorf(KindSchema, index, field, "Schema violation at %s: %s", v.Field(), v.Description())
	}
}

// splitSchemaField maps a gojsonschema field path such as "3.title" to the
// record index and the field inside the record.
func splitSchemaField(path string) (int, string) {
	head, rest, _ := strings.Cut(path, ".")
	index, err := strconv.Atoi(head)
	if err != nil {
		return DocumentIndex, ""
	}
	field, _, _ := strings.Cut(rest, ".")
	return index, field
}
