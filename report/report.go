package report

import (
	"strings"
	"time"

	"github.com/bitrise-steplib/steps-playwright-email-report/playwright"
)

const (
	defaultTitle   = "Test"
	defaultProject = "default"
)

// Outcome is the flattened result of a single Playwright test, across all of its attempts.
type Outcome struct {
	Title   string
	Project string
	File    string

	AnyFailed  bool
	AnyPassed  bool
	AllSkipped bool

	// Duration and ErrorMessage come from the representative attempt:
	// the first failed one, or the first one if none failed.
	Duration     time.Duration
	HasDuration  bool
	ErrorMessage string
}

// Flaky reports whether the test failed at least once and passed on a retry.
func (o Outcome) Flaky() bool {
	return o.AnyFailed && o.AnyPassed
}

// Summary ...
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Flaky   int
}

// Results holds the outcomes in report order and their summary.
type Results struct {
	Outcomes []Outcome
	Summary  Summary
}

// Failures returns the first limit failed outcomes, in report order.
func (r Results) Failures(limit int) []Outcome {
	var failures []Outcome
	for _, outcome := range r.Outcomes {
		if len(failures) >= limit {
			break
		}
		if outcome.AnyFailed {
			failures = append(failures, outcome)
		}
	}
	return failures
}

// Aggregate flattens the suite tree of the report into outcomes and counts them.
// A nil report results in no outcomes and a zero summary.
func Aggregate(report *playwright.Report) Results {
	var outcomes []Outcome
	if report != nil {
		for _, suite := range report.Suites {
			outcomes = walk(suite, outcomes)
		}
	}

	return Results{
		Outcomes: outcomes,
		Summary:  summarize(outcomes),
	}
}

func walk(suite playwright.Suite, outcomes []Outcome) []Outcome {
	for _, child := range suite.Suites {
		outcomes = walk(child, outcomes)
	}

	for _, spec := range suite.Specs {
		for _, test := range spec.Tests {
			outcomes = append(outcomes, newOutcome(spec, test))
		}
	}

	return outcomes
}

func newOutcome(spec playwright.Spec, test playwright.Test) Outcome {
	outcome := Outcome{
		Title:   firstNonEmpty(string(test.Title), string(spec.Title), defaultTitle),
		Project: firstNonEmpty(string(test.ProjectName), string(test.Project), defaultProject),
		File:    string(spec.File),
	}

	allSkipped := len(test.Results) > 0
	for _, result := range test.Results {
		switch string(result.Status) {
		case playwright.StatusFailed:
			outcome.AnyFailed = true
		case playwright.StatusPassed:
			outcome.AnyPassed = true
		}
		if result.Status != playwright.StatusSkipped {
			allSkipped = false
		}
	}
	outcome.AllSkipped = allSkipped

	representative := representativeResult(test.Results)
	if representative.Duration.Valid {
		outcome.Duration = time.Duration(representative.Duration.Value * float64(time.Millisecond))
		outcome.HasDuration = true
	}
	outcome.ErrorMessage = errorMessage(representative.Error)

	return outcome
}

func representativeResult(results []playwright.Result) playwright.Result {
	for _, result := range results {
		if result.Status == playwright.StatusFailed {
			return result
		}
	}
	if len(results) > 0 {
		return results[0]
	}
	return playwright.Result{}
}

func errorMessage(err *playwright.Error) string {
	if err == nil {
		return ""
	}

	var parts []string
	for _, part := range []playwright.Text{err.Message, err.Snippet, err.Value} {
		if part != "" {
			parts = append(parts, string(part))
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func summarize(outcomes []Outcome) Summary {
	summary := Summary{Total: len(outcomes)}
	for _, outcome := range outcomes {
		if outcome.AnyPassed && !outcome.AnyFailed {
			summary.Passed++
		}
		if outcome.AnyFailed {
			summary.Failed++
		}
		if outcome.AllSkipped {
			summary.Skipped++
		}
		if outcome.Flaky() {
			summary.Flaky++
		}
	}
	return summary
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
