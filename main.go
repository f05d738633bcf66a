package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-playwright-email-report/email"
	"github.com/bitrise-steplib/steps-playwright-email-report/fileremover"
	"github.com/bitrise-steplib/steps-playwright-email-report/output"
	"github.com/bitrise-steplib/steps-playwright-email-report/playwright"
	"github.com/bitrise-steplib/steps-playwright-email-report/step"
	"github.com/bitrise-steplib/steps-playwright-email-report/testaddon"
	"github.com/bitrise-steplib/steps-playwright-email-report/testrunner"
	"github.com/joho/godotenv"
)

const dotEnvPath = ".env"

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()

	if err := loadDotEnv(dotEnvPath); err != nil {
		logger.Warnf("Failed to load %s: %s", dotEnvPath, err)
	}

	configParser, reportRunner, err := createStep(logger)
	if err != nil {
		return fail(logger, err)
	}

	config, err := configParser.ProcessConfig()
	if err != nil {
		return fail(logger, err)
	}

	result, runErr := reportRunner.Run(config)
	exportErr := reportRunner.Export(result)

	if runErr != nil {
		return fail(logger, runErr)
	}
	if exportErr != nil {
		return fail(logger, exportErr)
	}

	return 0
}

func fail(logger log.Logger, err error) int {
	logger.Errorf("%s", err)
	return 1
}

// loadDotEnv loads KEY=value pairs for local runs, variables already set in the environment win.
func loadDotEnv(pth string) error {
	if err := godotenv.Load(pth); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func createStep(logger log.Logger) (step.ConfigParser, step.ReportRunner, error) {
	envRepository := env.NewRepository()
	inputParser := stepconf.NewInputParser(envRepository)
	pathModifier := pathutil.NewPathModifier()
	configParser := step.NewConfigParser(inputParser, logger, pathModifier)

	commandFactory := command.NewFactory(envRepository)
	fileManager := fileutil.NewFileManager()

	renderer, err := email.NewRenderer()
	if err != nil {
		return step.ConfigParser{}, step.ReportRunner{}, err
	}

	testRunner := testrunner.NewRunner(logger, commandFactory)
	loader := playwright.NewLoader(fileManager, pathutil.NewPathChecker(), logger)

	outputEnvRepository := stepenv.NewRepository(envRepository)
	exporter := export.NewExporter(commandFactory, export.NewFileManager())
	testAddonExporter := testaddon.NewExporter(testaddon.NewTestAddon(logger, commandFactory, fileManager))
	outputExporter := output.NewExporter(outputEnvRepository, logger, &exporter, testAddonExporter)

	reportRunner := step.NewReportRunner(logger, testRunner, loader, renderer, fileManager, fileremover.NewFileRemover(), pathutil.NewPathProvider(), outputExporter)

	return configParser, reportRunner, nil
}
