// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package formats

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/elastic/events-validator/internal/events"
	"github.com/elastic/events-validator/internal/report"
)

func init() {
	report.RegisterFormat(ReportFormatHuman, reportHumanFormat)
}

const (
	// ReportFormatHuman reports validation results in a human-readable format
	ReportFormatHuman report.Format = "human"
)

var separator = strings.Repeat("=", 60)

func reportHumanFormat(r report.Report) (string, error) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	var b strings.Builder
	b.WriteString(bold.Sprint("Validating JSON file: "))
	b.WriteString(r.File)
	if r.Size != report.UnknownSize {
		fmt.Fprintf(&b, " (%s)", humanize.Bytes(uint64(r.Size)))
	}
	b.WriteString("\n" + separator + "\n\n")

	if len(r.Result.Findings) == 0 {
		b.WriteString(green.Sprint("No issues found!") + "\n")
	} else {
		b.WriteString(bold.Sprint("Issues found:") + "\n")
		for _, f := range r.Result.Findings {
			switch f.Severity {
			case events.SeverityError:
				fmt.Fprintf(&b, "  %s %s\n", red.Sprint("✗ ERROR  "), f.Message)
			default:
				fmt.Fprintf(&b, "  %s %s\n", yellow.Sprint("⚠ WARNING"), f.Message)
			}
		}
	}

	b.WriteString("\n" + separator + "\n")
	if r.Result.Valid {
		b.WriteString(green.Sprint("✓ File is VALID for use with fetch()") + "\n")
		b.WriteString("  The JSON structure is correct and can be fetched and parsed.")
	} else {
		b.WriteString(red.Sprint("✗ File is NOT VALID for use with fetch()") + "\n")
		b.WriteString("  Fix the critical issues (ERROR) before using with fetch().")
	}
	return b.String(), nil
}
