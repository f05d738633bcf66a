package playwright

import (
	"encoding/json"
	"fmt"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// LoadResult is either a loaded Report or the reason why there is none.
// A missing or broken results file is not an error: the report is still rendered, with zero tests.
type LoadResult struct {
	Report *Report
	Reason error
}

// Loaded ...
func (r LoadResult) Loaded() bool {
	return r.Report != nil
}

func absent(reason error) LoadResult {
	return LoadResult{Reason: reason}
}

// Loader ...
type Loader interface {
	Load(pth string) LoadResult
}

type loader struct {
	fileManager fileutil.FileManager
	pathChecker pathutil.PathChecker
	logger      log.Logger
}

// NewLoader ...
func NewLoader(fileManager fileutil.FileManager, pathChecker pathutil.PathChecker, logger log.Logger) Loader {
	return &loader{
		fileManager: fileManager,
		pathChecker: pathChecker,
		logger:      logger,
	}
}

// Load reads and decodes the Playwright JSON report at pth, it never fails.
func (l loader) Load(pth string) LoadResult {
	exists, err := l.pathChecker.IsPathExists(pth)
	if err != nil {
		return absent(fmt.Errorf("failed to check if results file exists (%s): %w", pth, err))
	}
	if !exists {
		return absent(fmt.Errorf("results file does not exist: %s", pth))
	}

	f, err := l.fileManager.Open(pth)
	if err != nil {
		return absent(fmt.Errorf("failed to open results file (%s): %w", pth, err))
	}
	defer func() {
		if err := f.Close(); err != nil {
			l.logger.Warnf("Failed to close results file: %s", err)
		}
	}()

	var report Report
	if err := json.NewDecoder(f).Decode(&report); err != nil {
		return absent(fmt.Errorf("failed to decode results file (%s): %w", pth, err))
	}

	l.logger.Debugf("Results file loaded: %s", pth)

	return LoadResult{Report: &report}
}
