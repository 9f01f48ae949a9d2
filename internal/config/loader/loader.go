// Package loader reads configuration sources into nested maps.
//
// A FileLoader decodes one TOML or YAML file; EnvLoader maps prefixed
// environment variables onto dotted setting paths. A source that does not
// exist loads as nil, nil so callers can layer optional sources.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Loader reads one configuration source.
type Loader interface {
	Load() (map[string]any, error)
}

// Format decodes one configuration file syntax.
type Format struct {
	// Name is the format's short name, such as "toml".
	Name string

	// Extensions lists the lower-case file extensions, dot included.
	Extensions []string

	decode func(source string, data []byte) (map[string]any, error)
}

// Formats lists the supported file formats in lookup order.
var Formats = []Format{TOML, YAML}

// FormatFor returns the format that handles path's extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats {
		if slices.Contains(f.Extensions, ext) {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
}

// FileLoader reads a single configuration file.
type FileLoader struct {
	fsys   fs.FS
	path   string
	format Format
}

// NewFileLoader creates a loader that decodes path with format.
func NewFileLoader(path string, format Format) *FileLoader {
	return &FileLoader{path: path, format: format}
}

// ForPath returns a loader for path, picking the format by extension.
func ForPath(path string) (*FileLoader, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	return NewFileLoader(path, format), nil
}

// WithFS makes the loader read from fsys instead of the OS file system.
// The path must then be a valid fs.FS path.
func (l *FileLoader) WithFS(fsys fs.FS) *FileLoader {
	l.fsys = fsys
	return l
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	return l.path
}

// Format returns the loader's file format.
func (l *FileLoader) Format() Format {
	return l.format
}

// Load reads and decodes the file. A missing file yields nil, nil.
func (l *FileLoader) Load() (map[string]any, error) {
	var data []byte
	var err error
	if l.fsys != nil {
		data, err = fs.ReadFile(l.fsys, l.path)
	} else {
		data, err = os.ReadFile(l.path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return l.format.decode(l.path, data)
}

// Decode reads configuration in the loader's format from r.
func (l *FileLoader) Decode(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return l.format.decode("<reader>", data)
}

// ParseError reports malformed configuration. Line and Column are 1-based
// and zero when the decoder does not report a position.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
