// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elastic/events-validator/internal/cobraext"
	"github.com/elastic/events-validator/internal/configuration"
	"github.com/elastic/events-validator/internal/formatter"
)

const formatLongDescription = `Use this command to format the events file.

The formatter rewrites the JSON document with four-space indentation. In fail-fast mode the file is left untouched and the command fails if it requires formatting.`

func setupFormatCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Format the events file",
		Long:  formatLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  formatCommandAction,
	}
	cmd.Flags().BoolP(cobraext.FailFastFlagName, cobraext.FailFastFlagShorthand, false, cobraext.FailFastFlagDescription)

	return cobraext.NewCommand(cmd, cobraext.ContextFile)
}

func formatCommandAction(cmd *cobra.Command, args []string) error {
	cmd.Println("Format the events file")

	appConfig, err := configuration.Configuration()
	if err != nil {
		return fmt.Errorf("loading configuration failed: %w", err)
	}

	ff, err := cmd.Flags().GetBool(cobraext.FailFastFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.FailFastFlagName)
	}

	file := fileArg(args, appConfig)
	path, err := cobraext.ResolvePath(cmd, file)
	if err != nil {
		return err
	}

	formatted, err := formatter.FormatFile(path, ff)
	if err != nil {
		return fmt.Errorf("formatting the file failed (path: %s): %w", file, err)
	}
	if formatted {
		cmd.Printf("File %s formatted\n", file)
	}

	cmd.Println("Done")
	return nil
}
