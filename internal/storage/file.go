package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage stores a document in a file on disk.
type FileStorage struct {
	path string
	perm fs.FileMode
}

// Open binds a FileStorage to path. The file is created empty if it does
// not exist; its parent directory must exist.
func Open(path string) (*FileStorage, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(absPath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open %s: is a directory", path)
	}

	return &FileStorage{path: absPath, perm: info.Mode().Perm()}, nil
}

// Path returns the absolute path of the file.
func (s *FileStorage) Path() string {
	return s.path
}

// Name returns the base name of the file.
func (s *FileStorage) Name() string {
	return filepath.Base(s.path)
}

// Exists reports whether the file is still present on disk.
func (s *FileStorage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// ReadAll reads the whole file.
func (s *FileStorage) ReadAll() ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// WriteAll truncates the file and writes data to it.
func (s *FileStorage) WriteAll(data []byte) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Ensure FileStorage implements Storage.
var _ Storage = (*FileStorage)(nil)
