// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cobraext

// Global flags
const (
	VerboseFlagName        = "verbose"
	VerboseFlagShorthand   = "v"
	VerboseFlagDescription = "verbose mode (repeat for more details)"

	LogFormatFlagName        = "log-format"
	LogFormatFlagDescription = "format of the logs (%s)"

	ChangeDirectoryFlagName        = "change-directory"
	ChangeDirectoryFlagShorthand   = "C"
	ChangeDirectoryFlagDescription = "change to the specified directory before running the command"
)

// Flag names and descriptions used by CLI commands.
const (
	FailFastFlagName        = "fail-fast"
	FailFastFlagShorthand   = "f"
	FailFastFlagDescription = "fail if the file requires formatting instead of rewriting it"

	ReportFormatFlagName        = "report-format"
	ReportFormatFlagShorthand   = "r"
	ReportFormatFlagDescription = "format of the validation report (%s)"

	ReportOutputFlagName        = "report-output"
	ReportOutputFlagShorthand   = "o"
	ReportOutputFlagDescription = "output location for the validation report (%s)"

	SchemaFlagName        = "schema"
	SchemaFlagShorthand   = "s"
	SchemaFlagDescription = "JSON Schema file applied after the built-in checks"
)
