package storage

import "errors"

// ErrReadOnly is returned by writes to a read-only storage.
var ErrReadOnly = errors.New("storage is read-only")

// Storage is a whole-document byte store.
type Storage interface {
	// ReadAll returns the complete stored content.
	ReadAll() ([]byte, error)

	// WriteAll replaces the stored content with data.
	WriteAll(data []byte) error
}

// Named is implemented by storages that have a display name.
type Named interface {
	Name() string
}

// NameOf returns the display name of s, or "[scratch]" if it has none.
func NameOf(s Storage) string {
	if n, ok := s.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return "[scratch]"
}
