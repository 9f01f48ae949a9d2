// Package app wires the editor together: configuration, logging, the
// text buffer session, the terminal backend, the renderer, input
// handling, file watching and the startup script.
//
// All document state is owned by the event loop goroutine. Other
// goroutines (the file watcher, signal handlers) only post interrupt
// events to the backend.
package app
