// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package formats

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/elastic/events-validator/internal/events"
	"github.com/elastic/events-validator/internal/report"
)

func init() {
	report.RegisterFormat(ReportFormatXUnit, reportXUnitFormat)
}

const (
	// ReportFormatXUnit reports validation results in the xUnit format
	ReportFormatXUnit report.Format = "xUnit"
)

const documentCaseName = "document"

type testSuites struct {
	XMLName xml.Name    `xml:"testsuites"`
	Suites  []testSuite `xml:"testsuite"`
}

type testSuite struct {
	Name     string     `xml:"name,attr"`
	Tests    int        `xml:"tests,attr"`
	Failures int        `xml:"failures,attr"`
	Comment  string     `xml:",comment"`
	Cases    []testCase `xml:"testcase,omitempty"`
}

type testCase struct {
	Name      string   `xml:"name,attr"`
	ClassName string   `xml:"classname,attr"`
	Failure   *failure `xml:"failure,omitempty"`
	SystemOut string   `xml:"system-out,omitempty"`
}

type failure struct {
	Message string `xml:"message,attr"`
	Details string `xml:",chardata"`
}

func reportXUnitFormat(r report.Report) (string, error) {
	errs := map[int][]string{}
	warnings := map[int][]string{}
	indexes := map[int]struct{}{events.DocumentIndex: {}}
	for i := 0; i < r.Result.Records; i++ {
		indexes[i] = struct{}{}
	}
	for _, f := range r.Result.Findings {
		indexes[f.Index] = struct{}{}
		if f.Severity == events.SeverityError {
			errs[f.Index] = append(errs[f.Index], f.Message)
		} else {
			warnings[f.Index] = append(warnings[f.Index], f.Message)
		}
	}

	sorted := make([]int, 0, len(indexes))
	for index := range indexes {
		sorted = append(sorted, index)
	}
	sort.Ints(sorted)

	suite := testSuite{
		Name:    r.File,
		Comment: fmt.Sprintf("validation of events file: %s", r.File),
	}
	for _, index := range sorted {
		name := documentCaseName
		if index != events.DocumentIndex {
			name = fmt.Sprintf("item %d", index)
		}
		c := testCase{
			Name:      name,
			ClassName: r.File,
			SystemOut: strings.Join(warnings[index], "\n"),
		}
		if messages := errs[index]; len(messages) > 0 {
			c.Failure = &failure{
				Message: fmt.Sprintf("%d error(s) found", len(messages)),
				Details: strings.Join(messages, "\n"),
			}
			suite.Failures++
		}
		suite.Cases = append(suite.Cases, c)
	}
	suite.Tests = len(suite.Cases)

	out, err := xml.MarshalIndent(&testSuites{Suites: []testSuite{suite}}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("unable to format validation results as xUnit: %w", err)
	}
	return xml.Header + string(out), nil
}
