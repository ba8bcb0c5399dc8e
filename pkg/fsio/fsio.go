package fsio

import (
	"fmt"
	"io"
	"os"
)

var (
	_ FileIO = (*DatasetFileSystem)(nil)

	ErrFileExists = fmt.Errorf("file already exists")
)

// DatasetFileSystem is the default implementation of file io using the os package
type DatasetFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *DatasetFileSystem) Stat(target string) (os.FileInfo, error) {
	return os.Stat(target)
}

// Open is a wrapper around os.Open
func (o *DatasetFileSystem) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// Create is a wrapper around os.Create
func (o *DatasetFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Rename moves a file into place. The target file must not exist yet.
func (o *DatasetFileSystem) Rename(source, target string) error {
	if o.FileExists(target) {
		return ErrFileExists
	}
	return os.Rename(source, target)
}

// Remove is a wrapper around os.Remove
func (o *DatasetFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *DatasetFileSystem) MkdirAll(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

func (o *DatasetFileSystem) FileExists(path string) bool {
	_, err := o.Stat(path)
	return err == nil
}
