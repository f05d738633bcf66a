package junit

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/bitrise-steplib/steps-playwright-email-report/report"
)

const suitesName = "Playwright"

// TestSuites ...
type TestSuites struct {
	XMLName    xml.Name    `xml:"testsuites"`
	Name       string      `xml:"name,attr"`
	Tests      int         `xml:"tests,attr"`
	Failures   int         `xml:"failures,attr"`
	Skipped    int         `xml:"skipped,attr"`
	Time       float64     `xml:"time,attr"`
	TestSuites []TestSuite `xml:"testsuite"`
}

// TestSuite groups the test cases of a single spec file.
type TestSuite struct {
	Name      string     `xml:"name,attr"`
	Tests     int        `xml:"tests,attr"`
	Failures  int        `xml:"failures,attr"`
	Skipped   int        `xml:"skipped,attr"`
	Time      float64    `xml:"time,attr"`
	TestCases []TestCase `xml:"testcase"`
}

// TestCase ...
type TestCase struct {
	Name      string   `xml:"name,attr"`
	ClassName string   `xml:"classname,attr"`
	Time      float64  `xml:"time,attr"`
	Failure   *Failure `xml:"failure,omitempty"`
	Skipped   *Skipped `xml:"skipped,omitempty"`
}

// Failure ...
type Failure struct {
	Message  string `xml:"message,attr"`
	Contents string `xml:",chardata"`
}

// Skipped ...
type Skipped struct{}

// Convert groups the outcomes by spec file, keeping the report order of both files and tests.
func Convert(results report.Results) TestSuites {
	suites := TestSuites{Name: suitesName}
	indexByFile := map[string]int{}

	for _, outcome := range results.Outcomes {
		idx, ok := indexByFile[outcome.File]
		if !ok {
			idx = len(suites.TestSuites)
			indexByFile[outcome.File] = idx
			suites.TestSuites = append(suites.TestSuites, TestSuite{Name: suiteName(outcome.File)})
		}

		testCase := TestCase{
			Name:      outcome.Title,
			ClassName: outcome.Project,
			Time:      outcome.Duration.Seconds(),
		}

		suite := &suites.TestSuites[idx]
		switch {
		case outcome.AnyFailed:
			testCase.Failure = &Failure{
				Message:  firstLine(outcome.ErrorMessage),
				Contents: outcome.ErrorMessage,
			}
			suite.Failures++
		case outcome.AllSkipped:
			testCase.Skipped = &Skipped{}
			suite.Skipped++
		}

		suite.Tests++
		suite.Time += testCase.Time
		suite.TestCases = append(suite.TestCases, testCase)
	}

	for _, suite := range suites.TestSuites {
		suites.Tests += suite.Tests
		suites.Failures += suite.Failures
		suites.Skipped += suite.Skipped
		suites.Time += suite.Time
	}

	return suites
}

// Marshal encodes the test suites as an indented JUnit XML document.
func Marshal(suites TestSuites) ([]byte, error) {
	out, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JUnit XML: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func suiteName(file string) string {
	if file == "" {
		return suitesName
	}
	return file
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
