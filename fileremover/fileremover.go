package fileremover

import (
	"errors"
	"io/fs"
	"os"
)

// FileRemover ...
type FileRemover interface {
	RemoveIfExists(name string) error
}

type fileRemover struct{}

// NewFileRemover ...
func NewFileRemover() FileRemover {
	return fileRemover{}
}

// RemoveIfExists removes the named file, a missing file is not an error.
func (r fileRemover) RemoveIfExists(name string) error {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
