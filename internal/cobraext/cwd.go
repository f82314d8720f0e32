// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cobraext

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Getwd returns the working directory of the command, honoring --change-directory.
func Getwd(cmd *cobra.Command) (string, error) {
	cwd, err := cmd.Flags().GetString(ChangeDirectoryFlagName)
	if err != nil {
		return "", FlagParsingError(err, ChangeDirectoryFlagName)
	}
	if cwd == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", FlagParsingError(err, ChangeDirectoryFlagName)
	}
	return abs, nil
}

// ResolvePath makes a relative path relative to the working directory of the command.
func ResolvePath(cmd *cobra.Command, path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := Getwd(cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, path), nil
}
