// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/events-validator/internal/events"
)

func TestSchemaCommand(t *testing.T) {
	out, err := runCommand(t, "schema")
	require.NoError(t, err)
	assert.JSONEq(t, string(events.EventsSchema()), out)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "array", schema["type"])
}

func TestSchemaCommandRejectsArguments(t *testing.T) {
	_, err := runCommand(t, "schema", "events.json")
	assert.Error(t, err)
}
