// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/events-validator/internal/configuration/locations"
	"github.com/elastic/events-validator/internal/multierror"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	for title, path := range map[string]string{
		"missing file": filepath.Join(t.TempDir(), "config.yml"),
		"empty file":   writeConfig(t, ""),
	} {
		t.Run(title, func(t *testing.T) {
			ac, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "events.json", ac.File())
			assert.Equal(t, "human", ac.ReportFormat())
			assert.Equal(t, "stdout", ac.ReportOutput())
			assert.Empty(t, ac.Schema())
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
check:
  file: public/events.json
  report_format: xUnit
  report_output: file
  schema: schemas/events.json
`)

	ac, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "public/events.json", ac.File())
	assert.Equal(t, "xUnit", ac.ReportFormat())
	assert.Equal(t, "file", ac.ReportOutput())
	assert.Equal(t, "schemas/events.json", ac.Schema())
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, `
check:
  files: events.json
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "field files not found")
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeConfig(t, `
check:
  report_format: pdf
  report_output: printer
`)

	_, err := Load(path)
	require.Error(t, err)

	var errs multierror.Error
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), `unknown report format "pdf"`)
	assert.Contains(t, errs[1].Error(), `unknown report output "printer"`)
}

func TestConfigurationFromDataHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(locations.DataHomeEnv, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yml"), []byte("check:\n  report_format: json\n"), 0644))

	ac, err := Configuration()
	require.NoError(t, err)
	assert.Equal(t, "json", ac.ReportFormat())
	assert.Equal(t, "events.json", ac.File())
}
