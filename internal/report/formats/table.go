// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package formats

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/table"

	"github.com/elastic/events-validator/internal/events"
	"github.com/elastic/events-validator/internal/report"
)

func init() {
	report.RegisterFormat(ReportFormatTable, reportTableFormat)
}

const (
	// ReportFormatTable reports validation results as a table
	ReportFormatTable report.Format = "table"
)

func reportTableFormat(r report.Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Validating JSON file: %s\n", r.File)

	if len(r.Result.Findings) > 0 {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Item", "Severity", "Kind", "Message"})
		for _, f := range r.Result.Findings {
			item := "-"
			if f.Index != events.DocumentIndex {
				item = fmt.Sprint(f.Index)
			}
			t.AppendRow(table.Row{item, strings.ToUpper(f.Severity.String()), f.Kind, f.Message})
		}
		t.SetStyle(table.StyleRounded)
		b.WriteString(t.Render() + "\n")
	}

	verdict := "VALID"
	if !r.Result.Valid {
		verdict = "NOT VALID"
	}
	fmt.Fprintf(&b, "Result: %s (%d error(s), %d warning(s))", verdict, r.Result.Errors(), r.Result.Warnings())
	return b.String(), nil
}
