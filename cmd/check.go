// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/elastic/events-validator/internal/cobraext"
	"github.com/elastic/events-validator/internal/configuration"
	"github.com/elastic/events-validator/internal/events"
	"github.com/elastic/events-validator/internal/logger"
	"github.com/elastic/events-validator/internal/report"
	"github.com/elastic/events-validator/internal/report/formats"
	"github.com/elastic/events-validator/internal/report/outputs"
)

const checkLongDescription = `Use this command to validate an events file.

The file defaults to "events.json" (see "check.file" in the configuration file). Errors make the file unusable and the command exits with status 1; warnings are reported but keep the file valid.`

// ErrInvalidDocument is returned when the checked document has error findings.
var ErrInvalidDocument = errors.New("events file is not valid")

func setupCheckCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate an events file",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkCommandAction,
	}
	addCheckFlags(cmd)

	return cobraext.NewCommand(cmd, cobraext.ContextFile)
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(cobraext.ReportFormatFlagName, cobraext.ReportFormatFlagShorthand, string(formats.ReportFormatHuman), fmt.Sprintf(cobraext.ReportFormatFlagDescription, strings.Join(report.FormatsList(), ", ")))
	cmd.Flags().StringP(cobraext.ReportOutputFlagName, cobraext.ReportOutputFlagShorthand, string(outputs.ReportOutputSTDOUT), fmt.Sprintf(cobraext.ReportOutputFlagDescription, strings.Join(report.OutputsList(), ", ")))
	cmd.Flags().StringP(cobraext.SchemaFlagName, cobraext.SchemaFlagShorthand, "", cobraext.SchemaFlagDescription)
}

func checkCommandAction(cmd *cobra.Command, args []string) error {
	appConfig, err := configuration.Configuration()
	if err != nil {
		return fmt.Errorf("loading configuration failed: %w", err)
	}

	file := fileArg(args, appConfig)

	reportFormat, err := stringFlagOrDefault(cmd, cobraext.ReportFormatFlagName, appConfig.ReportFormat())
	if err != nil {
		return err
	}
	reportOutput, err := stringFlagOrDefault(cmd, cobraext.ReportOutputFlagName, appConfig.ReportOutput())
	if err != nil {
		return err
	}
	schemaPath, err := stringFlagOrDefault(cmd, cobraext.SchemaFlagName, appConfig.Schema())
	if err != nil {
		return err
	}

	validator, err := newValidator(cmd, schemaPath)
	if err != nil {
		return err
	}

	path, err := cobraext.ResolvePath(cmd, file)
	if err != nil {
		return err
	}

	r := checkFile(validator, file, path)
	logger.Debugf("Validation of %s finished (valid: %t, errors: %d, warnings: %d)", file, r.Result.Valid, r.Result.Errors(), r.Result.Warnings())
	for _, f := range r.Result.Findings {
		logger.Tracef("Finding %s (kind: %s, index: %d, field: %q)", f, f.Kind, f.Index, f.Field)
	}

	content, err := report.FormatReport(report.Format(reportFormat), r)
	if err != nil {
		return fmt.Errorf("error formatting validation report: %w", err)
	}
	err = report.WriteReport(report.Output(reportOutput), cmd.OutOrStdout(), r, content, report.Format(reportFormat))
	if err != nil {
		return fmt.Errorf("error writing validation report: %w", err)
	}

	if !r.Result.Valid {
		return ErrInvalidDocument
	}
	return nil
}

func newValidator(cmd *cobra.Command, schemaPath string) (*events.Validator, error) {
	if schemaPath == "" {
		return events.NewValidator(), nil
	}

	path, err := cobraext.ResolvePath(cmd, schemaPath)
	if err != nil {
		return nil, err
	}
	schema, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading JSON schema failed: %w", err)
	}
	checker, err := events.NewSchemaChecker(schema)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON schema %s: %w", schemaPath, err)
	}
	logger.Debugf("Using JSON schema %s", schemaPath)
	return events.NewValidator(events.WithSchema(checker)), nil
}

// checkFile reads and validates the file. Read failures and panics become
// terminal findings, so they are reported like any other result.
func checkFile(validator *events.Validator, name, path string) (r report.Report) {
	r = report.Report{File: name, Size: report.UnknownSize}
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Errorf("Validation of %s panicked: %v", name, recovered)
			if logger.IsDebugMode() {
				logger.Debugf("Stack trace:\n%s", debug.Stack())
			}
			r.Result = events.Unexpected(fmt.Errorf("%v", recovered))
		}
	}()

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.Result = events.FileNotFound(name)
		return r
	}
	if err != nil {
		r.Result = events.Unexpected(err)
		return r
	}
	r.Size = int64(len(content))

	if !utf8.Valid(content) {
		r.Result = events.Unexpected(errors.New("file content is not valid UTF-8 text"))
		return r
	}

	logger.Debugf("Validating %s (%d bytes)", path, len(content))
	r.Result = validator.Validate(content)
	return r
}

func fileArg(args []string, appConfig *configuration.ApplicationConfiguration) string {
	if len(args) > 0 {
		return args[0]
	}
	return appConfig.File()
}

func stringFlagOrDefault(cmd *cobra.Command, name, defaultValue string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", cobraext.FlagParsingError(err, name)
	}
	if !cmd.Flags().Changed(name) {
		return defaultValue, nil
	}
	return value, nil
}
