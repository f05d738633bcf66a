package testrunner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
)

// JSONOutputEnvKey tells the Playwright JSON reporter where to write its report.
const JSONOutputEnvKey = "PLAYWRIGHT_JSON_OUTPUT_NAME"

// Output ...
type Output struct {
	RawOut   []byte
	ExitCode int
}

// Runner runs the test command which produces the Playwright JSON report.
type Runner interface {
	Run(args []string, resultsPath string) (Output, error)
}

type runner struct {
	logger         log.Logger
	commandFactory command.Factory
}

// NewRunner ...
func NewRunner(logger log.Logger, commandFactory command.Factory) Runner {
	return &runner{
		logger:         logger,
		commandFactory: commandFactory,
	}
}

// Run executes args, streaming its output to stdout while also collecting it.
func (r *runner) Run(args []string, resultsPath string) (Output, error) {
	if len(args) == 0 {
		return Output{ExitCode: -1}, errors.New("no test command specified")
	}

	var (
		outBuffer bytes.Buffer
		outWriter = io.MultiWriter(&outBuffer, os.Stdout)
	)

	testCmd := r.commandFactory.Create(args[0], args[1:], &command.Opts{
		Stdout: outWriter,
		Stderr: outWriter,
		Env:    []string{fmt.Sprintf("%s=%s", JSONOutputEnvKey, resultsPath)},
	})

	r.logger.TPrintf("$ %s", testCmd.PrintableCommandArgs())

	err := testCmd.Run()

	exitCode := 0
	if err != nil {
		exitCode = -1

		var exerr *exec.ExitError
		if errors.As(err, &exerr) {
			exitCode = exerr.ExitCode()
		}
	}

	return Output{
		RawOut:   outBuffer.Bytes(),
		ExitCode: exitCode,
	}, err
}
