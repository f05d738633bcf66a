package output

import (
	"path/filepath"
	"strconv"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-playwright-email-report/report"
	"github.com/bitrise-steplib/steps-playwright-email-report/testaddon"
)

// Exported env var keys ...
const (
	TestResultKey      = "PLAYWRIGHT_TEST_RESULT"
	EmailReportPathKey = "PLAYWRIGHT_EMAIL_REPORT_PATH"
	EmailReportZipKey  = "PLAYWRIGHT_EMAIL_REPORT_ZIP_PATH"
	JUnitReportPathKey = "PLAYWRIGHT_JUNIT_REPORT_PATH"
	TestsTotalKey      = "PLAYWRIGHT_TESTS_TOTAL"
	TestsPassedKey     = "PLAYWRIGHT_TESTS_PASSED"
	TestsFailedKey     = "PLAYWRIGHT_TESTS_FAILED"
	TestsSkippedKey    = "PLAYWRIGHT_TESTS_SKIPPED"
	TestsFlakyKey      = "PLAYWRIGHT_TESTS_FLAKY"
)

const (
	emailReportZipName = "playwright-email-report.zip"
	testAddonBundle    = "Playwright"
)

// OutputExporter is implemented by go-steputils' export.Exporter.
type OutputExporter interface {
	ExportOutputFilesZip(key string, sourcePaths []string, zipPath string) error
}

// Exporter ...
type Exporter interface {
	ExportTestRunResult(failed bool)
	ExportSummary(summary report.Summary)
	ExportEmailReport(deployDir, reportPath string) error
	ExportEmailReportZip(deployDir, reportPath string)
	ExportJUnitReport(deployDir, junitPath string) error
}

type exporter struct {
	envRepository     env.Repository
	logger            log.Logger
	outputExporter    OutputExporter
	testAddonExporter testaddon.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter OutputExporter, testAddonExporter testaddon.Exporter) Exporter {
	return &exporter{
		envRepository:     envRepository,
		logger:            logger,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func (e exporter) ExportTestRunResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	e.set(TestResultKey, status)
}

func (e exporter) ExportSummary(summary report.Summary) {
	e.set(TestsTotalKey, strconv.Itoa(summary.Total))
	e.set(TestsPassedKey, strconv.Itoa(summary.Passed))
	e.set(TestsFailedKey, strconv.Itoa(summary.Failed))
	e.set(TestsSkippedKey, strconv.Itoa(summary.Skipped))
	e.set(TestsFlakyKey, strconv.Itoa(summary.Flaky))
}

func (e exporter) ExportEmailReport(deployDir, reportPath string) error {
	pth, err := copyToDeployDir(deployDir, reportPath)
	if err != nil {
		return err
	}

	e.set(EmailReportPathKey, pth)
	return nil
}

func (e exporter) ExportEmailReportZip(deployDir, reportPath string) {
	if deployDir == "" {
		e.logger.Debugf("No deploy dir set, skipping %s", EmailReportZipKey)
		return
	}

	zipPath := filepath.Join(deployDir, emailReportZipName)
	if err := e.outputExporter.ExportOutputFilesZip(EmailReportZipKey, []string{reportPath}, zipPath); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", EmailReportZipKey, err)
	}
}

func (e exporter) ExportJUnitReport(deployDir, junitPath string) error {
	pth, err := copyToDeployDir(deployDir, junitPath)
	if err != nil {
		return err
	}

	e.set(JUnitReportPathKey, pth)

	// export the report for the testing addon
	if addonResultPath := e.envRepository.Get(configs.BitrisePerStepTestResultDirEnvKey); len(addonResultPath) > 0 {
		e.logger.Println()
		e.logger.Infof("Exporting test results")

		if err := e.testAddonExporter.CopyAndSaveMetadata(testaddon.AddonCopy{
			SourceTestResultPath:  junitPath,
			TargetAddonPath:       addonResultPath,
			TargetAddonBundleName: testAddonBundle,
		}); err != nil {
			e.logger.Warnf("Failed to export test results: %s", err)
		}
	}

	return nil
}

func (e exporter) set(key, value string) {
	if err := e.envRepository.Set(key, value); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", key, err)
	}
}
