// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "events-validator ")
	assert.Contains(t, out, "version-hash")
}

func TestRootCommandRejectsExtraArguments(t *testing.T) {
	_, err := runCommand(t, "a.json", "b.json")
	assert.Error(t, err)
}

func TestUnknownLogFormat(t *testing.T) {
	_, err := runCommand(t, "--log-format", "xml", "version")
	assert.ErrorContains(t, err, "unrecognized log format")
}
