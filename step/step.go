package step

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-playwright-email-report/email"
	"github.com/bitrise-steplib/steps-playwright-email-report/fileremover"
	"github.com/bitrise-steplib/steps-playwright-email-report/junit"
	"github.com/bitrise-steplib/steps-playwright-email-report/output"
	"github.com/bitrise-steplib/steps-playwright-email-report/playwright"
	"github.com/bitrise-steplib/steps-playwright-email-report/report"
	"github.com/bitrise-steplib/steps-playwright-email-report/testrunner"
	"github.com/hashicorp/go-version"
)

const (
	minSupportedPlaywrightVersion = "1.20.0"
	junitReportName               = "playwright-junit.xml"
)

// ReportRunner ...
type ReportRunner struct {
	logger         log.Logger
	testRunner     testrunner.Runner
	loader         playwright.Loader
	renderer       email.Renderer
	fileManager    fileutil.FileManager
	fileRemover    fileremover.FileRemover
	pathProvider   pathutil.PathProvider
	outputExporter output.Exporter
}

// NewReportRunner ...
func NewReportRunner(logger log.Logger, testRunner testrunner.Runner, loader playwright.Loader, renderer email.Renderer, fileManager fileutil.FileManager, fileRemover fileremover.FileRemover, pathProvider pathutil.PathProvider, outputExporter output.Exporter) ReportRunner {
	return ReportRunner{
		logger:         logger,
		testRunner:     testRunner,
		loader:         loader,
		renderer:       renderer,
		fileManager:    fileManager,
		fileRemover:    fileRemover,
		pathProvider:   pathProvider,
		outputExporter: outputExporter,
	}
}

// Result ...
type Result struct {
	DeployDir string

	ReportPath      string
	JUnitReportPath string

	Summary report.Summary
	// TestsFailed is set if any test failed or the test command exited with an error.
	TestsFailed bool
}

// Run ...
func (s ReportRunner) Run(cfg Config) (Result, error) {
	result := Result{DeployDir: cfg.DeployDir}
	status := cfg.Status

	if len(cfg.TestCommandArgs) > 0 {
		s.logger.Println()
		s.logger.Infof("Running Playwright tests")

		// A results file left over from a previous run must not end up in this report.
		if err := s.fileRemover.RemoveIfExists(cfg.ResultsPath); err != nil {
			s.logger.Warnf("Failed to remove previous test results (%s): %s", cfg.ResultsPath, err)
		}

		out, err := s.testRunner.Run(cfg.TestCommandArgs, cfg.ResultsPath)
		if err != nil {
			s.logger.Println()
			s.logger.Warnf("Test command exit code: %d", out.ExitCode)
			s.logger.Errorf("Test command failed: %s", err)
			printLastLinesOfTestLog(s.logger, string(out.RawOut))
			result.TestsFailed = true
		}

		if status == "" {
			status = string(email.StatusPassed)
			if err != nil {
				status = string(email.StatusFailed)
			}
		}
	}

	s.logger.Println()
	s.logger.Infof("Loading test results")

	loaded := s.loader.Load(cfg.ResultsPath)
	if loaded.Loaded() {
		s.checkPlaywrightVersion(*loaded.Report)
	} else {
		s.logger.Warnf("No test results available, the report will show 0 tests: %s", loaded.Reason)
	}

	results := report.Aggregate(loaded.Report)
	result.Summary = results.Summary
	if results.Summary.Failed > 0 {
		result.TestsFailed = true
	}

	s.logger.Printf("%s", report.FormatTable(results))

	metadata := cfg.Metadata
	metadata.Status = email.ParseStatus(status)

	html, err := s.renderer.Render(results, metadata)
	if err != nil {
		return result, err
	}

	if err := s.fileManager.Write(cfg.OutputPath, html, 0644); err != nil {
		return result, fmt.Errorf("failed to write email report (%s): %w", cfg.OutputPath, err)
	}
	result.ReportPath = cfg.OutputPath
	s.logger.Donef("Email report written to %s", cfg.OutputPath)

	if cfg.ExportJUnitReport {
		junitPath, err := s.writeJUnitReport(results)
		if err != nil {
			s.logger.Warnf("Failed to write JUnit report: %s", err)
		} else {
			result.JUnitReportPath = junitPath
		}
	}

	return result, nil
}

// Export ...
func (s ReportRunner) Export(result Result) error {
	s.outputExporter.ExportTestRunResult(result.TestsFailed)
	s.outputExporter.ExportSummary(result.Summary)

	if result.ReportPath != "" {
		if err := s.outputExporter.ExportEmailReport(result.DeployDir, result.ReportPath); err != nil {
			return fmt.Errorf("failed to export email report: %w", err)
		}
		s.outputExporter.ExportEmailReportZip(result.DeployDir, result.ReportPath)
	}

	if result.JUnitReportPath != "" {
		if err := s.outputExporter.ExportJUnitReport(result.DeployDir, result.JUnitReportPath); err != nil {
			s.logger.Warnf("Failed to export JUnit report: %s", err)
		}
	}

	return nil
}

func (s ReportRunner) checkPlaywrightVersion(pwReport playwright.Report) {
	ver, err := pwReport.PlaywrightVersion()
	if err != nil {
		s.logger.Debugf("Could not determine Playwright version: %s", err)
		return
	}
	s.logger.Printf("- playwrightVersion: %s", ver.String())

	minVersion := version.Must(version.NewVersion(minSupportedPlaywrightVersion))
	if ver.LessThan(minVersion) {
		s.logger.Warnf("Playwright %s is older than the minimum supported version (%s), the report might be incomplete", ver.String(), minSupportedPlaywrightVersion)
	}
}

func (s ReportRunner) writeJUnitReport(results report.Results) (string, error) {
	out, err := junit.Marshal(junit.Convert(results))
	if err != nil {
		return "", err
	}

	tmpDir, err := s.pathProvider.CreateTempDir("playwright-junit")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	pth := filepath.Join(tmpDir, junitReportName)
	if err := s.fileManager.Write(pth, string(out), 0644); err != nil {
		return "", fmt.Errorf("failed to write file (%s): %w", pth, err)
	}
	return pth, nil
}
