// Package storage keeps the raw bytes of uploaded spreadsheets on the local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vfg2006/elt-dashboard-api/pkg/utils"
)

const storedNamePrefix = "file-"

var ErrTooLarge = errors.New("file exceeds the upload size limit")

type LocalStore struct {
	dir     string
	maxSize int64
}

// NewLocalStore creates dir when needed. A maxSize of 0 disables the size check.
func NewLocalStore(dir string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, maxSize: maxSize}, nil
}

// Save copies body into a new file with a generated name ending in ext and returns that
// name and the number of bytes written. Nothing is left on disk when Save fails.
func (s *LocalStore) Save(ext string, body io.Reader) (string, int64, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate stored name: %w", err)
	}

	name := storedNamePrefix + id + ext
	f, err := os.OpenFile(s.Path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create stored file: %w", err)
	}

	reader := body
	if s.maxSize > 0 {
		reader = io.LimitReader(body, s.maxSize+1)
	}

	size, copyErr := io.Copy(f, reader)
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		err = fmt.Errorf("failed to write stored file: %w", copyErr)
	case closeErr != nil:
		err = fmt.Errorf("failed to close stored file: %w", closeErr)
	case s.maxSize > 0 && size > s.maxSize:
		err = ErrTooLarge
	}
	if err != nil {
		os.Remove(s.Path(name))
		return "", 0, err
	}

	return name, size, nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *LocalStore) Remove(name string) error {
	if err := os.Remove(s.Path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
