package storage

import "sync"

// MemoryStorage keeps content in memory.
//
// MemoryStorage is safe for concurrent use.
type MemoryStorage struct {
	mu       sync.RWMutex
	name     string
	data     []byte
	readOnly bool
	writes   int
}

// NewMemoryStorage creates an in-memory storage holding content.
func NewMemoryStorage(name, content string) *MemoryStorage {
	return &MemoryStorage{name: name, data: []byte(content)}
}

// SetReadOnly makes subsequent writes fail with ErrReadOnly.
func (m *MemoryStorage) SetReadOnly(readOnly bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readOnly = readOnly
}

// Name returns the name given at creation.
func (m *MemoryStorage) Name() string {
	return m.name
}

// ReadAll returns a copy of the stored bytes.
func (m *MemoryStorage) ReadAll() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// WriteAll replaces the stored bytes.
func (m *MemoryStorage) WriteAll(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readOnly {
		return ErrReadOnly
	}
	m.data = append(m.data[:0:0], data...)
	m.writes++
	return nil
}

// String returns the stored content.
func (m *MemoryStorage) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return string(m.data)
}

// Writes returns how many times WriteAll succeeded.
func (m *MemoryStorage) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Ensure MemoryStorage implements Storage.
var _ Storage = (*MemoryStorage)(nil)
