// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package locations manages base file and directory locations from within the events-validator data home
package locations

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DataHomeEnv overrides the default data home directory.
	DataHomeEnv = "EVENTS_VALIDATOR_DATA_HOME"

	dataHomeDir = ".events-validator"
	reportsDir  = "reports"

	configurationFile = "config.yml"
)

// LocationManager maintains an instance of a data home location
type LocationManager struct {
	root string
}

// NewLocationManager returns a new manager to track the data home dir
func NewLocationManager() (*LocationManager, error) {
	dir, err := configurationDir()
	if err != nil {
		return nil, fmt.Errorf("error getting data home dir: %w", err)
	}

	return &LocationManager{root: dir}, nil
}

// RootDir returns the root events-validator dir
func (loc LocationManager) RootDir() string {
	return loc.root
}

// ReportsDir returns the location of reports written with the file output
func (loc LocationManager) ReportsDir() string {
	return filepath.Join(loc.root, reportsDir)
}

// ConfigurationFile returns the location of the application configuration
func (loc LocationManager) ConfigurationFile() string {
	return filepath.Join(loc.root, configurationFile)
}

// configurationDir returns the data home directory location
func configurationDir() (string, error) {
	if dir := os.Getenv(DataHomeEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("reading home dir failed: %w", err)
	}
	return filepath.Join(homeDir, dataHomeDir), nil
}
