// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package configuration

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elastic/events-validator/internal/configuration/locations"
	"github.com/elastic/events-validator/internal/logger"
	"github.com/elastic/events-validator/internal/multierror"
	"github.com/elastic/events-validator/internal/report"
	_ "github.com/elastic/events-validator/internal/report/formats"
	_ "github.com/elastic/events-validator/internal/report/outputs"
)

const (
	// DefaultFile is the document checked when no file is given.
	DefaultFile = "events.json"

	defaultReportFormat = "human"
	defaultReportOutput = "stdout"
)

// ApplicationConfiguration represents the configuration of the events-validator.
type ApplicationConfiguration struct {
	c configFile
}

type configFile struct {
	Check check `yaml:"check"`
}

type check struct {
	File         string `yaml:"file"`
	ReportFormat string `yaml:"report_format"`
	ReportOutput string `yaml:"report_output"`
	Schema       string `yaml:"schema"`
}

// File returns the document checked when no file is given.
func (ac *ApplicationConfiguration) File() string {
	return stringOrDefault(ac.c.Check.File, DefaultFile)
}

// ReportFormat returns the default report format.
func (ac *ApplicationConfiguration) ReportFormat() string {
	return stringOrDefault(ac.c.Check.ReportFormat, defaultReportFormat)
}

// ReportOutput returns the default report output.
func (ac *ApplicationConfiguration) ReportOutput() string {
	return stringOrDefault(ac.c.Check.ReportOutput, defaultReportOutput)
}

// Schema returns the path of the JSON Schema applied on every check, if any.
func (ac *ApplicationConfiguration) Schema() string {
	return ac.c.Check.Schema
}

// Configuration function returns the events-validator configuration stored in the data home.
// A missing configuration file results in the default configuration.
func Configuration() (*ApplicationConfiguration, error) {
	loc, err := locations.NewLocationManager()
	if err != nil {
		return nil, fmt.Errorf("can't read data home directory: %w", err)
	}
	return Load(loc.ConfigurationFile())
}

// Load reads the configuration from the given path.
func Load(path string) (*ApplicationConfiguration, error) {
	cfg, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("Configuration file %s not found, using defaults", path)
		return &ApplicationConfiguration{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't read configuration file: %w", err)
	}

	ac, err := parse(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	logger.Debugf("Configuration loaded from %s", path)
	return ac, nil
}

func parse(cfg []byte) (*ApplicationConfiguration, error) {
	var c configFile
	dec := yaml.NewDecoder(bytes.NewReader(cfg))
	dec.KnownFields(true)
	err := dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't unmarshal configuration file: %w", err)
	}

	ac := &ApplicationConfiguration{c: c}
	if err := ac.validate(); err != nil {
		return nil, err
	}
	return ac, nil
}

func (ac *ApplicationConfiguration) validate() error {
	var errs multierror.Error
	if format := ac.ReportFormat(); !slices.Contains(report.FormatsList(), format) {
		errs = append(errs, fmt.Errorf("unknown report format %q (available: %s)", format, strings.Join(report.FormatsList(), ", ")))
	}
	if output := ac.ReportOutput(); !slices.Contains(report.OutputsList(), output) {
		errs = append(errs, fmt.Errorf("unknown report output %q (available: %s)", output, strings.Join(report.OutputsList(), ", ")))
	}
	return errs.Unique().ErrorOrNil()
}

func stringOrDefault(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
