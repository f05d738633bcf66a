package step

import (
	"fmt"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-playwright-email-report/email"
	shellquote "github.com/kballard/go-shellquote"
)

const defaultBrand = "Playwright"

// Input ...
type Input struct {
	// Test results
	ResultsPath string `env:"results_path,required"`
	OutputPath  string `env:"output_path,required"`
	TestCommand string `env:"test_command"`

	// Run metadata
	RunURL     string `env:"run_url"`
	Repository string `env:"repository"`
	Branch     string `env:"branch"`
	Status     string `env:"status"`
	CommitSHA  string `env:"commit_sha"`
	Actor      string `env:"actor"`

	// Report
	Brand             string `env:"brand"`
	Locale            string `env:"locale,opt[es,en]"`
	ExportJUnitReport bool   `env:"export_junit_report,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`
}

// Config ...
type Config struct {
	ResultsPath     string
	OutputPath      string
	TestCommandArgs []string

	// Status is the raw status input, empty if it was not set.
	Status   string
	Metadata email.Metadata

	ExportJUnitReport bool
	DeployDir         string
}

// ConfigParser ...
type ConfigParser struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier pathutil.PathModifier
}

// NewConfigParser ...
func NewConfigParser(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier) ConfigParser {
	return ConfigParser{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
	}
}

// ProcessConfig ...
func (p ConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	p.logger.Println()

	p.logger.EnableDebugLog(input.Verbose)

	resultsPath, err := p.pathModifier.AbsPath(input.ResultsPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute results path: %w", err)
	}

	outputPath, err := p.pathModifier.AbsPath(input.OutputPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute output path: %w", err)
	}

	var testCommandArgs []string
	if strings.TrimSpace(input.TestCommand) != "" {
		testCommandArgs, err = shellquote.Split(input.TestCommand)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse test command (%s): %w", input.TestCommand, err)
		}
	}

	status := input.Status
	if status != "" && status != string(email.StatusFailed) && status != string(email.StatusPassed) {
		p.logger.Warnf("Unrecognized status (%s), the report will show the run as passed", status)
	}

	brand := input.Brand
	if brand == "" {
		brand = defaultBrand
	}

	return Config{
		ResultsPath:     resultsPath,
		OutputPath:      outputPath,
		TestCommandArgs: testCommandArgs,

		Status: status,
		Metadata: email.Metadata{
			Brand:      brand,
			Repository: input.Repository,
			Branch:     input.Branch,
			Commit:     input.CommitSHA,
			Actor:      input.Actor,
			RunURL:     input.RunURL,
			Status:     email.ParseStatus(status),
			Locale:     email.Locale(input.Locale),
		},

		ExportJUnitReport: input.ExportJUnitReport,
		DeployDir:         input.DeployDir,
	}, nil
}
