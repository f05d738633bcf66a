package output

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/command"
	"github.com/bitrise-io/go-utils/pathutil"
)

// copyToDeployDir copies pth into deployDir and returns the absolute path of the copy.
// Without a deploy dir the absolute path of pth itself is returned.
func copyToDeployDir(deployDir, pth string) (string, error) {
	absPth, err := pathutil.AbsPath(pth)
	if err != nil {
		return "", fmt.Errorf("failed to expand path (%s): %w", pth, err)
	}
	if deployDir == "" {
		return absPth, nil
	}

	deployPth, err := pathutil.AbsPath(filepath.Join(deployDir, filepath.Base(pth)))
	if err != nil {
		return "", fmt.Errorf("failed to expand path (%s): %w", deployDir, err)
	}
	if deployPth == absPth {
		return absPth, nil
	}

	if err := command.CopyFile(absPth, deployPth); err != nil {
		return "", fmt.Errorf("failed to copy (%s) to (%s): %w", absPth, deployPth, err)
	}
	return deployPth, nil
}
