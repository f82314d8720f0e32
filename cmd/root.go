// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elastic/events-validator/internal/cobraext"
	"github.com/elastic/events-validator/internal/logger"
)

const rootLongDescription = `Use this tool to validate an events file before publishing it.

The file must be a JSON array of event objects with the string fields "title", "date" (ISO 8601), "location" and "link" (http or https URL).
When no command is given, the file is checked as with the "check" command.`

func setupCommands() []*cobraext.Command {
	commands := []*cobraext.Command{
		setupCheckCommand(),
		setupFormatCommand(),
		setupSchemaCommand(),
		setupUpcomingCommand(),
		setupVersionCommand(),
	}
	sort.SliceStable(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// RootCmd creates and returns root cmd for events-validator
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "events-validator [file]",
		Short:         "events-validator - Command line tool for validating events files",
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cobraext.ComposeCommandActions(cmd, args,
				processPersistentFlags,
			)
		},
		RunE: checkCommandAction,
	}
	rootCmd.PersistentFlags().CountP(cobraext.VerboseFlagName, cobraext.VerboseFlagShorthand, cobraext.VerboseFlagDescription)
	rootCmd.PersistentFlags().String(cobraext.LogFormatFlagName, logger.DefaultFormatLabel, fmt.Sprintf(cobraext.LogFormatFlagDescription, strings.Join(logFormats(), ", ")))
	rootCmd.PersistentFlags().StringP(cobraext.ChangeDirectoryFlagName, cobraext.ChangeDirectoryFlagShorthand, "", cobraext.ChangeDirectoryFlagDescription)
	addCheckFlags(rootCmd)

	for _, cmd := range setupCommands() {
		rootCmd.AddCommand(cmd.Command)
	}
	return rootCmd
}

func processPersistentFlags(cmd *cobra.Command, args []string) error {
	verbosity, err := cmd.Flags().GetCount(cobraext.VerboseFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.VerboseFlagName)
	}

	logFormat, err := cmd.Flags().GetString(cobraext.LogFormatFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.LogFormatFlagName)
	}

	return logger.SetupLogger(logger.LoggerOptions{
		Verbosity: verbosity,
		LogFormat: logFormat,
	})
}

func logFormats() []string {
	var formats []string
	for name := range logger.LogFormats {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}
