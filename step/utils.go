package step

import (
	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/stringutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

func printLastLinesOfTestLog(logger log.Logger, rawTestOutput string) {
	logger.Errorf("\nLast lines of the test log:")
	logger.Printf("%s", stringutil.LastNLines(rawTestOutput, 20))

	logger.Infof(colorstring.Magenta(`
The email report is still generated from whatever results the test command wrote.
A failed test command is exported as PLAYWRIGHT_TEST_RESULT=failed.`))
}
