package playwright

import (
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedReport = `{
  "config": {"version": "1.47.2"},
  "suites": [
    {
      "title": "home.spec.ts",
      "file": "home.spec.ts",
      "specs": [
        {
          "title": "home loads",
          "file": "tests/home.spec.ts",
          "tests": [
            {
              "projectName": "chromium",
              "results": [
                {"status": "failed", "duration": 1200, "error": {"message": "Timeout", "snippet": "> 12 | await page.goto('/')"}},
                {"status": "passed", "duration": 800}
              ]
            }
          ]
        }
      ],
      "suites": [
        {
          "title": "nested",
          "specs": [
            {"title": "nested spec", "file": "tests/nested.spec.ts", "tests": [{"title": "nested test", "results": []}]}
          ]
        }
      ]
    }
  ]
}`

func Test_GivenMissingFile_WhenLoad_ThenReportIsAbsent(t *testing.T) {
	// Given
	loader := createLoader()

	// When
	result := loader.Load(filepath.Join(t.TempDir(), "playwright-results.json"))

	// Then
	assert.False(t, result.Loaded())
	assert.Nil(t, result.Report)
	assert.Error(t, result.Reason)
}

func Test_GivenMalformedJSON_WhenLoad_ThenReportIsAbsent(t *testing.T) {
	// Given
	pth := writeReport(t, `{"suites": [`)
	loader := createLoader()

	// When
	result := loader.Load(pth)

	// Then
	assert.False(t, result.Loaded())
	assert.Error(t, result.Reason)
}

func Test_GivenValidReport_WhenLoad_ThenDecodesTheSuiteTree(t *testing.T) {
	// Given
	pth := writeReport(t, nestedReport)
	loader := createLoader()

	// When
	result := loader.Load(pth)

	// Then
	require.True(t, result.Loaded())
	require.NoError(t, result.Reason)

	report := result.Report
	require.Len(t, report.Suites, 1)
	suite := report.Suites[0]
	require.Len(t, suite.Specs, 1)
	require.Len(t, suite.Suites, 1)

	test := suite.Specs[0].Tests[0]
	assert.Equal(t, Text("chromium"), test.ProjectName)
	require.Len(t, test.Results, 2)
	assert.Equal(t, Text(StatusFailed), test.Results[0].Status)
	assert.Equal(t, Number{Value: 1200, Valid: true}, test.Results[0].Duration)
	require.NotNil(t, test.Results[0].Error)
	assert.Equal(t, Text("Timeout"), test.Results[0].Error.Message)
	assert.Nil(t, test.Results[1].Error)
}

func Test_GivenSuitesIsNotAList_WhenLoad_ThenReportHasNoSuites(t *testing.T) {
	// Given
	pth := writeReport(t, `{"suites": {"title": "not a list"}}`)
	loader := createLoader()

	// When
	result := loader.Load(pth)

	// Then
	require.True(t, result.Loaded())
	assert.Empty(t, result.Report.Suites)
}

func Test_GivenUnexpectedFieldTypes_WhenLoad_ThenFieldsAreTreatedAsAbsent(t *testing.T) {
	// Given
	pth := writeReport(t, `{"suites": [{"specs": [{"title": 42, "tests": [{"project": {"name": "webkit"}, "results": [{"status": "passed", "duration": "fast"}, {"status": "skipped", "duration": null}]}]}]}]}`)
	loader := createLoader()

	// When
	result := loader.Load(pth)

	// Then
	require.True(t, result.Loaded())
	spec := result.Report.Suites[0].Specs[0]
	assert.Equal(t, Text(""), spec.Title)
	assert.Equal(t, Text(""), spec.Tests[0].Project)
	assert.False(t, spec.Tests[0].Results[0].Duration.Valid)
	assert.False(t, spec.Tests[0].Results[1].Duration.Valid)
}

func Test_GivenErrorIsAString_WhenLoad_ThenKeepsTheAttempt(t *testing.T) {
	// Given
	pth := writeReport(t, `{"suites": [{"specs": [{"title": "home loads", "tests": [{"results": [{"status": "failed", "duration": 900, "error": "boom"}]}]}]}]}`)
	loader := createLoader()

	// When
	result := loader.Load(pth)

	// Then
	require.True(t, result.Loaded())
	attempts := result.Report.Suites[0].Specs[0].Tests[0].Results
	require.Len(t, attempts, 1)
	assert.Equal(t, Text(StatusFailed), attempts[0].Status)
	assert.Equal(t, Number{Value: 900, Valid: true}, attempts[0].Duration)
	require.NotNil(t, attempts[0].Error)
	assert.Equal(t, Error{}, *attempts[0].Error)
}

func Test_GivenConfigIsAString_WhenLoad_ThenKeepsTheSuites(t *testing.T) {
	// Given
	pth := writeReport(t, `{"config": "x", "suites": [{"specs": [{"title": "home loads", "tests": [{"results": [{"status": "passed"}]}]}]}]}`)
	loader := createLoader()

	// When
	result := loader.Load(pth)

	// Then
	require.True(t, result.Loaded())
	assert.Equal(t, Config{}, result.Report.Config)
	require.Len(t, result.Report.Suites, 1)
	assert.Equal(t, Text(StatusPassed), result.Report.Suites[0].Specs[0].Tests[0].Results[0].Status)

	_, err := result.Report.PlaywrightVersion()
	assert.Error(t, err)
}

func Test_GivenListElementsThatAreNotObjects_WhenLoad_ThenTheyDecodeAsEmptyNodes(t *testing.T) {
	// Given
	pth := writeReport(t, `{"suites": [1, {"specs": ["x", {"title": "home loads", "tests": [{"results": ["x", {"status": "passed"}]}]}]}]}`)
	loader := createLoader()

	// When
	result := loader.Load(pth)

	// Then
	require.True(t, result.Loaded())
	suites := result.Report.Suites
	require.Len(t, suites, 2)
	assert.Equal(t, Suite{}, suites[0])

	specs := suites[1].Specs
	require.Len(t, specs, 2)
	assert.Equal(t, Spec{}, specs[0])
	assert.Equal(t, Text("home loads"), specs[1].Title)

	attempts := specs[1].Tests[0].Results
	require.Len(t, attempts, 2)
	assert.Equal(t, Result{}, attempts[0])
	assert.Equal(t, Text(StatusPassed), attempts[1].Status)
}

func Test_GivenReportWithVersion_WhenPlaywrightVersion_ThenParsesIt(t *testing.T) {
	// Given
	report := Report{Config: Config{Version: "1.47.2"}}

	// When
	ver, err := report.PlaywrightVersion()

	// Then
	require.NoError(t, err)
	assert.Equal(t, "1.47.2", ver.String())
}

func Test_GivenReportWithoutVersion_WhenPlaywrightVersion_ThenFails(t *testing.T) {
	// Given
	report := Report{}

	// When
	_, err := report.PlaywrightVersion()

	// Then
	assert.Error(t, err)
}

// Helpers

func createLoader() Loader {
	return NewLoader(fileutil.NewFileManager(), pathutil.NewPathChecker(), log.NewLogger())
}

func writeReport(t *testing.T, content string) string {
	pth := filepath.Join(t.TempDir(), "playwright-results.json")
	err := fileutil.NewFileManager().Write(pth, content, 0600)
	require.NoError(t, err)
	return pth
}
