// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package locations

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeEnv() string {
	// Copied from os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		return "USERPROFILE"
	case "plan9":
		return "home"
	default:
		return "HOME"
	}
}

func Test_configurationDir(t *testing.T) {
	t.Setenv(DataHomeEnv, "")
	t.Setenv(homeEnv(), "/home/events")

	actual, err := configurationDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/events", dataHomeDir), actual)
}

func Test_configurationDirError(t *testing.T) {
	t.Setenv(DataHomeEnv, "")
	t.Setenv(homeEnv(), "")

	_, err := configurationDir()
	assert.Error(t, err)
}

func Test_configurationDirOverride(t *testing.T) {
	expected := "/tmp/foobar"
	t.Setenv(DataHomeEnv, expected)

	loc, err := NewLocationManager()
	require.NoError(t, err)

	assert.Equal(t, expected, loc.RootDir())
	assert.Equal(t, filepath.Join(expected, "reports"), loc.ReportsDir())
	assert.Equal(t, filepath.Join(expected, "config.yml"), loc.ConfigurationFile())
}
