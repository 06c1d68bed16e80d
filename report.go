package main

import (
	"encoding/json"
	"io"
	"os"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/adventkit/adventkit/framework"
)

type jsonReport struct {
	OK    bool             `json:"ok"`
	Tests []jsonTestResult `json:"tests"`
}

type jsonTestResult struct {
	ID         string              `json:"id"`
	Status     string              `json:"status"`
	Errors     []string            `json:"errors"`
	Messages   []string            `json:"messages"`
	SkipReason string              `json:"skipReason,omitempty"`
	DurationMS ldvalue.OptionalInt `json:"durationMs"`
}

// newReport lists every test, parents before their subtests. Tests that did not run have no
// duration.
func newReport(results framework.Results) jsonReport {
	report := jsonReport{OK: results.OK(), Tests: []jsonTestResult{}}
	var walk func(parent framework.TestID)
	walk = func(parent framework.TestID) {
		for _, r := range results.Children(parent) {
			report.Tests = append(report.Tests, newReportEntry(results, r))
			walk(r.TestID)
		}
	}
	for _, r := range results.Tests {
		if len(r.TestID.Path) == 0 {
			report.Tests = append(report.Tests, newReportEntry(results, r))
		}
	}
	walk(framework.TestID{})
	return report
}

func newReportEntry(results framework.Results, r framework.TestResult) jsonTestResult {
	entry := jsonTestResult{
		ID:         r.TestID.String(),
		Status:     results.Status(r),
		Errors:     r.ErrorMessages(),
		Messages:   append([]string{}, r.Messages...),
		SkipReason: r.SkipReason,
	}
	if !r.Skipped {
		entry.DurationMS = ldvalue.NewOptionalInt(int(r.Duration.Milliseconds()))
	}
	return entry
}

func writeReport(w io.Writer, results framework.Results) error {
	data, err := json.MarshalIndent(newReport(results), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func writeReportFile(path string, results framework.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeReport(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
