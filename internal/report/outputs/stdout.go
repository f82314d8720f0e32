// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package outputs

import (
	"fmt"
	"io"

	"github.com/elastic/events-validator/internal/report"
)

func init() {
	report.RegisterOutput(ReportOutputSTDOUT, reportToSTDOUT)
}

const (
	// ReportOutputSTDOUT reports validation results to STDOUT
	ReportOutputSTDOUT report.Output = "stdout"
)

func reportToSTDOUT(w io.Writer, _ report.Report, content string, _ report.Format) error {
	_, err := fmt.Fprintln(w, content)
	return err
}
