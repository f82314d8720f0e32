// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package outputs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elastic/events-validator/internal/configuration/locations"
	"github.com/elastic/events-validator/internal/report"
	"github.com/elastic/events-validator/internal/report/formats"
)

func init() {
	report.RegisterOutput(ReportOutputFile, reportToFile)
}

const (
	// ReportOutputFile reports validation results to files in a folder
	ReportOutputFile report.Output = "file"
)

func reportToFile(w io.Writer, r report.Report, content string, format report.Format) error {
	loc, err := locations.NewLocationManager()
	if err != nil {
		return fmt.Errorf("could not determine reports folder: %w", err)
	}
	dest := loc.ReportsDir()

	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("could not create reports folder: %w", err)
	}

	ext := "txt"
	switch format {
	case formats.ReportFormatXUnit:
		ext = "xml"
	case formats.ReportFormatJSON:
		ext = "json"
	}

	base := strings.TrimSuffix(filepath.Base(r.File), filepath.Ext(r.File))
	fileName := fmt.Sprintf("%s_%d.%s", base, time.Now().UnixNano(), ext)
	filePath := filepath.Join(dest, fileName)

	if err := os.WriteFile(filePath, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("could not write report file: %w", err)
	}

	_, err = fmt.Fprintf(w, "Report written to %s\n", filePath)
	return err
}
