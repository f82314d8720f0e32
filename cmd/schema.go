// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/elastic/events-validator/internal/cobraext"
	"github.com/elastic/events-validator/internal/events"
)

const schemaLongDescription = `Use this command to print the JSON Schema of the events file.

The printed schema can be adjusted and passed back to the "check" command with the --schema flag.`

func setupSchemaCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the events file",
		Long:  schemaLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(events.EventsSchema())
			return err
		},
	}

	return cobraext.NewCommand(cmd, cobraext.ContextGlobal)
}
