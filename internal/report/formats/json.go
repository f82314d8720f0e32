// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package formats

import (
	"encoding/json"
	"fmt"

	"github.com/elastic/events-validator/internal/events"
	"github.com/elastic/events-validator/internal/report"
)

func init() {
	report.RegisterFormat(ReportFormatJSON, reportJSONFormat)
}

const (
	// ReportFormatJSON reports validation results in a JSON format
	ReportFormatJSON report.Format = "json"
)

type jsonReport struct {
	File     string           `json:"file"`
	Size     *int64           `json:"size,omitempty"`
	Valid    bool             `json:"valid"`
	Errors   int              `json:"errors"`
	Warnings int              `json:"warnings"`
	Findings []events.Finding `json:"findings"`
}

func reportJSONFormat(r report.Report) (string, error) {
	out := jsonReport{
		File:     r.File,
		Valid:    r.Result.Valid,
		Errors:   r.Result.Errors(),
		Warnings: r.Result.Warnings(),
		Findings: r.Result.Findings,
	}
	if r.Size != report.UnknownSize {
		out.Size = &r.Size
	}
	if out.Findings == nil {
		out.Findings = []events.Finding{}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshaling validation results to JSON: %w", err)
	}
	return string(b), nil
}
