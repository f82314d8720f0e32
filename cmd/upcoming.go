// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/elastic/events-validator/internal/cobraext"
	"github.com/elastic/events-validator/internal/configuration"
	"github.com/elastic/events-validator/internal/events"
)

const upcomingLongDescription = `Use this command to list the events taking place today or tomorrow.

Only records with a string title and a valid date are listed. Dates without a UTC offset are read in the local time zone.`

const upcomingTimeLayout = "Monday 3:04 PM"

var timeNow = time.Now

func setupUpcomingCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "upcoming [file]",
		Short: "List the events of today and tomorrow",
		Long:  upcomingLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  upcomingCommandAction,
	}

	return cobraext.NewCommand(cmd, cobraext.ContextFile)
}

func upcomingCommandAction(cmd *cobra.Command, args []string) error {
	appConfig, err := configuration.Configuration()
	if err != nil {
		return fmt.Errorf("loading configuration failed: %w", err)
	}

	file := fileArg(args, appConfig)
	path, err := cobraext.ResolvePath(cmd, file)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading events file failed: %w", err)
	}

	now := timeNow()
	upcoming, err := events.Upcoming(content, now)
	if err != nil {
		return fmt.Errorf("listing events of %s failed: %w", file, err)
	}

	if len(upcoming) == 0 {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "No events scheduled for today or tomorrow.")
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Title", "When", "", "Where"})
	for _, event := range upcoming {
		date := event.Date.In(now.Location())
		t.AppendRow(table.Row{
			event.Title,
			date.Format(upcomingTimeLayout),
			humanize.RelTime(date, now, "ago", "from now"),
			event.Location,
		})
	}
	t.SetStyle(table.StyleRounded)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
