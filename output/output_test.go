package output

import (
	"path/filepath"
	"testing"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-playwright-email-report/output/mocks"
	"github.com/bitrise-steplib/steps-playwright-email-report/report"
	"github.com/bitrise-steplib/steps-playwright-email-report/testaddon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testingMocks struct {
	envRepository     *mocks.Repository
	outputExporter    *mocks.OutputExporter
	testAddonExporter *mocks.Exporter
}

func Test_GivenSuccessfulTest_WhenExportingTestRunResults_ThenSetsEnvVariableToSuccess(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)

	// When
	exporter.ExportTestRunResult(false)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", TestResultKey, "succeeded")
}

func Test_GivenFailedTest_WhenExportingTestRunResults_ThenSetsEnvVariableToFailure(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)

	// When
	exporter.ExportTestRunResult(true)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", TestResultKey, "failed")
}

func Test_GivenSummary_WhenExporting_ThenSetsCountEnvVariables(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)

	// When
	exporter.ExportSummary(report.Summary{Total: 12, Passed: 9, Failed: 2, Skipped: 1, Flaky: 1})

	// Then
	mocks.envRepository.AssertCalled(t, "Set", TestsTotalKey, "12")
	mocks.envRepository.AssertCalled(t, "Set", TestsPassedKey, "9")
	mocks.envRepository.AssertCalled(t, "Set", TestsFailedKey, "2")
	mocks.envRepository.AssertCalled(t, "Set", TestsSkippedKey, "1")
	mocks.envRepository.AssertCalled(t, "Set", TestsFlakyKey, "1")
}

func Test_GivenEmailReport_WhenExporting_ThenCopiesItAndSetsEnvVariable(t *testing.T) {
	// Given
	reportPath := writeFile(t, "email.html", "<html></html>")
	deployDir := t.TempDir()
	deployPath := filepath.Join(deployDir, "email.html")

	exporter, mocks := createSutAndMocks(t)

	// When
	err := exporter.ExportEmailReport(deployDir, reportPath)

	// Then
	assert.NoError(t, err)
	assert.True(t, isPathExists(deployPath))
	mocks.envRepository.AssertCalled(t, "Set", EmailReportPathKey, deployPath)
}

func Test_GivenNoDeployDir_WhenExportingEmailReport_ThenExportsTheOriginalPath(t *testing.T) {
	// Given
	reportPath := writeFile(t, "email.html", "<html></html>")
	exporter, mocks := createSutAndMocks(t)

	// When
	err := exporter.ExportEmailReport("", reportPath)

	// Then
	assert.NoError(t, err)
	mocks.envRepository.AssertCalled(t, "Set", EmailReportPathKey, reportPath)
}

func Test_GivenEmailReport_WhenExportingZip_ThenZipsIntoTheDeployDir(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)
	mocks.outputExporter.On("ExportOutputFilesZip", EmailReportZipKey, []string{"email.html"}, filepath.Join("deploy", emailReportZipName)).Return(nil)

	// When
	exporter.ExportEmailReportZip("deploy", "email.html")

	// Then
	mocks.outputExporter.AssertExpectations(t)
}

func Test_GivenNoDeployDir_WhenExportingZip_ThenSkipsIt(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks(t)

	// When
	exporter.ExportEmailReportZip("", "email.html")

	// Then
	mocks.outputExporter.AssertNotCalled(t, "ExportOutputFilesZip", mock.Anything, mock.Anything, mock.Anything)
}

func Test_GivenTestResultDir_WhenExportingJUnitReport_ThenCopiesItForTheTestAddon(t *testing.T) {
	// Given
	junitPath := writeFile(t, "playwright-junit.xml", "<testsuites/>")
	deployDir := t.TempDir()

	exporter, mocks := createSutAndMocks(t)
	mocks.envRepository.On("Get", configs.BitrisePerStepTestResultDirEnvKey).Return("/test/results")
	mocks.testAddonExporter.On("CopyAndSaveMetadata", testaddon.AddonCopy{
		SourceTestResultPath:  junitPath,
		TargetAddonPath:       "/test/results",
		TargetAddonBundleName: "Playwright",
	}).Return(nil)

	// When
	err := exporter.ExportJUnitReport(deployDir, junitPath)

	// Then
	assert.NoError(t, err)
	mocks.envRepository.AssertCalled(t, "Set", JUnitReportPathKey, filepath.Join(deployDir, "playwright-junit.xml"))
	mocks.testAddonExporter.AssertExpectations(t)
}

func Test_GivenNoTestResultDir_WhenExportingJUnitReport_ThenSkipsTheTestAddon(t *testing.T) {
	// Given
	junitPath := writeFile(t, "playwright-junit.xml", "<testsuites/>")

	exporter, mocks := createSutAndMocks(t)
	mocks.envRepository.On("Get", configs.BitrisePerStepTestResultDirEnvKey).Return("")

	// When
	err := exporter.ExportJUnitReport("", junitPath)

	// Then
	assert.NoError(t, err)
	mocks.testAddonExporter.AssertNotCalled(t, "CopyAndSaveMetadata", mock.Anything)
}

// Helpers

func createSutAndMocks(t *testing.T) (Exporter, testingMocks) {
	envRepository := new(mocks.Repository)
	envRepository.On("Set", mock.Anything, mock.Anything).Return(nil)
	outputExporter := mocks.NewOutputExporter(t)
	testAddonExporter := mocks.NewExporter(t)

	exporter := NewExporter(envRepository, log.NewLogger(), outputExporter, testAddonExporter)

	return exporter, testingMocks{
		envRepository:     envRepository,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func writeFile(t *testing.T, name, content string) string {
	pth := filepath.Join(t.TempDir(), name)
	err := fileutil.NewFileManager().Write(pth, content, 0600)
	require.NoError(t, err)
	return pth
}

func isPathExists(path string) bool {
	isExist, _ := pathutil.NewPathChecker().IsPathExists(path)
	return isExist
}
