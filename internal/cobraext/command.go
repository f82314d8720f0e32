// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cobraext

import (
	"fmt"

	"github.com/spf13/cobra"
)

type CommandContext string

const (
	ContextGlobal CommandContext = "global"
	ContextFile   CommandContext = "file"
)

type Command struct {
	*cobra.Command
}

// NewCommand wraps cmd, stating its context at the end of the long description.
func NewCommand(cmd *cobra.Command, context CommandContext) *Command {
	cmd.Long = fmt.Sprintf("%s\n\nContext: %s\n", cmd.Long, context)
	return &Command{Command: cmd}
}

func (c *Command) Name() string {
	return c.Command.Name()
}
