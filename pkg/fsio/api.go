package fsio

import (
	"io"
	"os"
)

// FileIO is an interface for the file operations the dataset cache needs
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
	Create(name string) (io.WriteCloser, error)
	Rename(source, target string) error
	Remove(name string) error
	MkdirAll(name string, perm os.FileMode) error
	FileExists(path string) bool
}
