package testrunner

import (
	"testing"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenTestCommand_WhenRun_ThenPointsTheJSONReporterToTheResultsPath(t *testing.T) {
	// Given
	runner := createRunner()

	// When
	out, err := runner.Run([]string{"sh", "-c", "echo $" + JSONOutputEnvKey}, "/tmp/playwright-results.json")

	// Then
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	assert.Contains(t, string(out.RawOut), "/tmp/playwright-results.json")
}

func Test_GivenFailingTestCommand_WhenRun_ThenReturnsItsExitCode(t *testing.T) {
	// Given
	runner := createRunner()

	// When
	out, err := runner.Run([]string{"sh", "-c", "echo 1 failed; exit 3"}, "results.json")

	// Then
	assert.Error(t, err)
	assert.Equal(t, 3, out.ExitCode)
	assert.Contains(t, string(out.RawOut), "1 failed")
}

func Test_GivenNoTestCommand_WhenRun_ThenFails(t *testing.T) {
	// Given
	runner := createRunner()

	// When
	out, err := runner.Run(nil, "results.json")

	// Then
	assert.Error(t, err)
	assert.Equal(t, -1, out.ExitCode)
}

func createRunner() Runner {
	return NewRunner(log.NewLogger(), command.NewFactory(env.NewRepository()))
}
