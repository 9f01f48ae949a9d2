// Package storage persists document text and reports external changes.
//
// A Storage reads and writes the whole serialized document at once.
// FileStorage binds to a path on disk; MemoryStorage keeps the bytes in
// memory and is used by tests.
//
// Watcher observes a single file through fsnotify and delivers debounced
// change events on a channel. It never touches editor state itself; the
// caller decides what to do with an event.
package storage
