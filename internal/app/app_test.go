package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/elditor/internal/renderer/backend"
	"github.com/dshills/elditor/internal/storage"
)

// newTestApp creates an application isolated from the user's config.
func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	if opts.UserConfigDir == "" {
		opts.UserConfigDir = t.TempDir()
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runApp runs app on be until it returns or the test times out.
func runApp(t *testing.T, app *Application, be backend.Backend) error {
	t.Helper()
	if err := app.SetBackend(be); err != nil {
		t.Fatalf("SetBackend() failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		app.Shutdown()
		t.Fatal("Run() did not exit within timeout")
		return nil
	}
}

func ctrl(k backend.Key) backend.Event {
	return backend.KeyEvent(k, 0, backend.ModCtrl)
}

func typeText(be *backend.NullBackend, text string) {
	for _, r := range text {
		be.PostEvent(backend.RuneEvent(r))
	}
}

func TestNew_Scratch(t *testing.T) {
	app := newTestApp(t, Options{})

	if app.Config() == nil {
		t.Error("expected config to be initialized")
	}
	if app.Logger() == nil {
		t.Error("expected logger to be initialized")
	}
	if got := app.Session().Name(); got != "[scratch]" {
		t.Errorf("Session().Name() = %q, want [scratch]", got)
	}
	if app.IsRunning() {
		t.Error("expected IsRunning() to be false before Run()")
	}
}

func TestNew_OpenFile(t *testing.T) {
	path := writeFile(t, "a.txt", "one\ntwo\nthree")
	app := newTestApp(t, Options{File: path})

	s := app.Session()
	if s.Name() != "a.txt" {
		t.Errorf("Name() = %q, want a.txt", s.Name())
	}
	if s.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", s.LineCount())
	}
	if app.watcher == nil {
		t.Error("expected file watcher to be started")
	}
}

func TestNew_OpenMissingFileCreatesIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	app := newTestApp(t, Options{File: path})

	if app.Session().LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", app.Session().LineCount())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestNew_Errors(t *testing.T) {
	badConfig := writeFile(t, "config.toml", "[editor]\ntabWidth = 0\n")
	badKeys := writeFile(t, "config.toml", "[keys]\n\"Hyper+X\" = \"file.save\"\n")
	badAction := writeFile(t, "config.toml", "[keys]\n\"Ctrl+S\" = \"file.svae\"\n")

	tests := []struct {
		name      string
		opts      Options
		component string
	}{
		{"missing config file", Options{ConfigPath: filepath.Join(t.TempDir(), "nope.toml")}, "config"},
		{"invalid config", Options{ConfigPath: badConfig}, "config"},
		{"invalid log level", Options{LogLevel: "loud"}, "config"},
		{"invalid key binding", Options{ConfigPath: badKeys}, "input"},
		{"unknown bound action", Options{ConfigPath: badAction}, "input"},
		{"log file in missing dir", Options{LogPath: filepath.Join(t.TempDir(), "x", "y.log")}, "logger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.UserConfigDir = t.TempDir()
			_, err := New(tt.opts)
			var compErr *ComponentError
			if !errors.As(err, &compErr) {
				t.Fatalf("New() error = %v, want ComponentError", err)
			}
			if compErr.Component != tt.component {
				t.Errorf("Component = %q, want %q", compErr.Component, tt.component)
			}
		})
	}
}

func TestNew_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "elditor.log")
	app := newTestApp(t, Options{LogPath: logPath, LogLevel: "debug"})
	app.Shutdown()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"level":"info"`, "opened [scratch]", "shutdown"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}

func TestApplication_ShutdownIdempotent(t *testing.T) {
	app := newTestApp(t, Options{})

	app.Shutdown()
	app.Shutdown()
}

func TestApplication_RunWithoutBackend(t *testing.T) {
	app := newTestApp(t, Options{})

	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() error = %v, want ErrNoBackend", err)
	}
	if app.IsRunning() {
		t.Error("IsRunning() = true after failed Run()")
	}
}

func TestApplication_EditSaveQuit(t *testing.T) {
	path := writeFile(t, "a.txt", "hello")
	app := newTestApp(t, Options{File: path})
	be := backend.NewNullBackend(40, 5)

	typeText(be, "X")
	be.PostEvent(ctrl(backend.KeyCtrlS))
	be.PostEvent(ctrl(backend.KeyCtrlQ))

	if err := runApp(t, app, be); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Xhello" {
		t.Errorf("file = %q, want %q", data, "Xhello")
	}
	if got := be.Row(0); got != "Xhello" {
		t.Errorf("Row(0) = %q, want %q", got, "Xhello")
	}
	if got := be.Row(4); !strings.Contains(got, "wrote 1 lines") {
		t.Errorf("status = %q, want save message", got)
	}
	if !be.IsShutdown() {
		t.Error("backend not shut down after Run()")
	}
	if app.IsRunning() {
		t.Error("IsRunning() = true after Run()")
	}
}

func TestApplication_QuitWithUnsavedChanges(t *testing.T) {
	path := writeFile(t, "a.txt", "hello")
	app := newTestApp(t, Options{File: path})
	be := backend.NewNullBackend(60, 5)

	// Any action between two quits disarms the confirmation.
	typeText(be, "X")
	be.PostEvent(ctrl(backend.KeyCtrlQ))
	typeText(be, "Y")
	be.PostEvent(ctrl(backend.KeyCtrlQ))
	typeText(be, "Z")
	be.PostEvent(ctrl(backend.KeyCtrlQ))
	be.PostEvent(ctrl(backend.KeyCtrlQ))

	if err := runApp(t, app, be); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := app.Session().Buffer().Text(); got != "XYZhello" {
		t.Errorf("Text() = %q, want %q", got, "XYZhello")
	}
	if got := be.Row(4); !strings.Contains(got, "unsaved changes") {
		t.Errorf("status = %q, want unsaved warning", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "hello" {
		t.Errorf("file = %q, quitting must not save", data)
	}
}

func TestApplication_ExternalChange(t *testing.T) {
	path := writeFile(t, "a.txt", "hello")
	app := newTestApp(t, Options{File: path})
	be := backend.NewNullBackend(60, 5)

	if err := os.WriteFile(path, []byte("changed"), 0o644); err != nil {
		t.Fatal(err)
	}
	be.PostEvent(backend.InterruptEvent(storage.Event{Path: path, Op: storage.OpWrite}))
	be.PostEvent(ctrl(backend.KeyCtrlQ))

	if err := runApp(t, app, be); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := be.Row(4); !strings.Contains(got, "file changed on disk") {
		t.Errorf("status = %q, want change notice", got)
	}
	if got := app.Session().Buffer().Text(); got != "hello" {
		t.Errorf("Text() = %q, buffer must not be reloaded", got)
	}
}

func TestApplication_ErrorBecomesMessage(t *testing.T) {
	app := newTestApp(t, Options{})
	be := backend.NewNullBackend(60, 5)
	if err := app.SetBackend(be); err != nil {
		t.Fatal(err)
	}

	typeText(be, "draft")
	be.PostEvent(ctrl(backend.KeyCtrlS))

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(be.Row(4), "no file path") && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := be.Row(4); !strings.Contains(got, "no file path") {
		t.Errorf("status = %q, want save error", got)
	}

	app.Shutdown()
	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if got := app.Session().Buffer().Text(); got != "draft" {
		t.Errorf("Text() = %q", got)
	}
}

func TestApplication_InitScript(t *testing.T) {
	script := writeFile(t, "init.lua", `editor.insert("-- ")`)
	path := writeFile(t, "a.txt", "hello")
	app := newTestApp(t, Options{File: path, ScriptPath: script})
	be := backend.NewNullBackend(40, 5)

	be.PostEvent(ctrl(backend.KeyCtrlS))
	be.PostEvent(ctrl(backend.KeyCtrlQ))

	if err := runApp(t, app, be); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "-- hello" {
		t.Errorf("file = %q, want %q", data, "-- hello")
	}
}

func TestApplication_InitScriptFailure(t *testing.T) {
	script := writeFile(t, "init.lua", `error("nope")`)
	app := newTestApp(t, Options{ScriptPath: script})
	be := backend.NewNullBackend(60, 5)

	be.PostEvent(ctrl(backend.KeyCtrlQ))

	if err := runApp(t, app, be); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := be.Row(4); !strings.Contains(got, "script failed") {
		t.Errorf("status = %q, want script failure", got)
	}
}

func TestApplication_Resize(t *testing.T) {
	app := newTestApp(t, Options{})
	be := backend.NewNullBackend(40, 5)

	typeText(be, "abc")
	be.Resize(20, 3)
	be.PostEvent(ctrl(backend.KeyCtrlQ))
	be.PostEvent(ctrl(backend.KeyCtrlQ))

	if err := runApp(t, app, be); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := be.Row(0); got != "abc" {
		t.Errorf("Row(0) = %q, want abc", got)
	}
	if got := be.Row(2); !strings.Contains(got, "[scratch] [+]") {
		t.Errorf("status = %q, want status on last row", got)
	}
}

func TestApplication_ShutdownStopsRun(t *testing.T) {
	app := newTestApp(t, Options{})
	be := backend.NewNullBackend(40, 5)
	if err := app.SetBackend(be); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	deadline := time.Now().Add(time.Second)
	for !app.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if !app.IsRunning() {
		t.Fatal("expected app to be running")
	}
	if err := app.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}
	if err := app.SetBackend(be); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("SetBackend() while running error = %v, want ErrAlreadyRunning", err)
	}

	app.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not exit within timeout")
	}
}

func TestApplication_ShutdownBeforeRun(t *testing.T) {
	app := newTestApp(t, Options{})
	be := backend.NewNullBackend(40, 5)
	app.Shutdown()

	if err := runApp(t, app, be); err != nil {
		t.Errorf("Run() returned error: %v", err)
	}
	if app.IsRunning() {
		t.Error("expected app to stop running")
	}
}

func TestApplication_SafelyRecoversPanic(t *testing.T) {
	app := newTestApp(t, Options{})

	err := app.safely(func() error { panic(io.ErrUnexpectedEOF) })
	var panicErr *RecoveredPanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("safely() error = %v, want RecoveredPanicError", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("panic value is not unwrapped")
	}
	if panicErr.Stack == "" {
		t.Error("stack not captured")
	}

	if err := app.safely(func() error { return ErrQuit }); !errors.Is(err, ErrQuit) {
		t.Errorf("safely() error = %v, want ErrQuit", err)
	}
}
