package app

import (
	"context"
	"errors"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/dshills/elditor/internal/config"
	"github.com/dshills/elditor/internal/input"
	"github.com/dshills/elditor/internal/plugin/lua"
	"github.com/dshills/elditor/internal/renderer"
	"github.com/dshills/elditor/internal/renderer/backend"
	"github.com/dshills/elditor/internal/renderer/core"
	"github.com/dshills/elditor/internal/storage"
)

// Options configures the application.
type Options struct {
	// ConfigPath is an explicit configuration file. Empty searches the
	// user config directory.
	ConfigPath string

	// UserConfigDir overrides the directory searched for config files.
	UserConfigDir string

	// LogPath overrides log.file.
	LogPath string

	// LogLevel overrides log.level.
	LogLevel string

	// ScriptPath overrides editor.initScript.
	ScriptPath string

	// File is the file to edit. Empty opens a scratch buffer.
	File string
}

// Application is the central coordinator for all editor components.
type Application struct {
	mu sync.Mutex

	config    *config.Config
	logger    *Logger
	logCloser io.Closer

	backend  backend.Backend
	renderer *renderer.Renderer
	handler  *input.Handler

	session *Session
	watcher *storage.Watcher

	// quitArmed is set after a quit request was refused because of
	// unsaved changes.
	quitArmed bool

	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once

	opts Options
}

// shutdownSignal wakes the event loop from PollEvent.
type shutdownSignal struct{}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:   opts,
		done:   make(chan struct{}),
		logger: NullLogger,
	}

	if err := app.bootstrap(); err != nil {
		app.closeResources()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration
	var cfgOpts []config.Option
	if app.opts.UserConfigDir != "" {
		cfgOpts = append(cfgOpts, config.WithUserConfigDir(app.opts.UserConfigDir))
	}
	if app.opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithConfigFile(app.opts.ConfigPath))
	}
	app.config = config.New(cfgOpts...)
	if err := app.config.Load(context.Background()); err != nil {
		return NewComponentError("config", "load", err)
	}
	for path, value := range map[string]string{
		"log.file":          app.opts.LogPath,
		"log.level":         app.opts.LogLevel,
		"editor.initScript": app.opts.ScriptPath,
	} {
		if value == "" {
			continue
		}
		if err := app.config.Set(path, value); err != nil {
			return NewComponentError("config", "set "+path, err)
		}
	}
	if err := app.config.Validate(); err != nil {
		return NewComponentError("config", "validate", err)
	}

	// 2. Logging
	logCfg := app.config.Log()
	loggerCfg := DefaultLoggerConfig()
	loggerCfg.Level = ParseLogLevel(logCfg.Level)
	if logCfg.File != "" {
		f, err := OpenLogFile(logCfg.File)
		if err != nil {
			return NewComponentError("logger", "open", err)
		}
		app.logCloser = f
		loggerCfg.Output = f
	}
	app.logger = NewLogger(loggerCfg)
	if src := app.config.Source(); src != "" {
		app.logger.Info("loaded config from %s", src)
	}

	// 3. Document
	if err := app.openDocument(); err != nil {
		return err
	}

	// 4. Input
	keymap := input.DefaultKeymap()
	if err := keymap.Bind(app.config.Keys()); err != nil {
		return NewComponentError("input", "bind keys", err)
	}
	editorCfg := app.config.Editor()
	app.handler = input.NewHandler(keymap, input.Config{
		TabWidth:   editorCfg.TabWidth,
		ExpandTabs: editorCfg.ExpandTabs,
	})

	return nil
}

// openDocument opens the session and, for files, starts the watcher.
func (app *Application) openDocument() error {
	if app.opts.File == "" {
		app.session = NewScratchSession(app.logger)
		return nil
	}

	store, err := storage.Open(app.opts.File)
	if err != nil {
		return NewOperationError("open", app.opts.File, err)
	}
	app.session, err = OpenSession(store, app.logger)
	if err != nil {
		return err
	}

	// A missing watcher only loses change notifications.
	w, err := storage.NewWatcher(store.Path(), storage.DefaultDebounce)
	if err != nil {
		app.logger.WithComponent("watcher").Warn("not watching %s: %v", store.Path(), err)
		return nil
	}
	app.watcher = w
	return nil
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend, runs the startup script and processes
// events until quit or Shutdown.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.stopped() {
		return nil
	}

	app.mu.Lock()
	be := app.backend
	app.mu.Unlock()
	if be == nil {
		return NewComponentError("backend", "run", ErrNoBackend)
	}

	if err := be.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer be.Shutdown()

	app.renderer = renderer.New(be, rendererOptions(app.config))

	if app.watcher != nil {
		go app.forwardWatcher(be)
	}

	app.runInitScript()

	return app.eventLoop(be)
}

// rendererOptions converts configuration to renderer options.
func rendererOptions(cfg *config.Config) renderer.Options {
	editor := cfg.Editor()
	ui := cfg.UI()

	opts := renderer.DefaultOptions()
	opts.TabWidth = editor.TabWidth
	opts.ScrollOff = editor.ScrollOff
	opts.ShowStatusLine = ui.ShowStatusLine
	opts.SelectionStyle = core.StyleNamed(ui.SelectionStyle)
	opts.CaretStyle = core.StyleNamed(ui.CaretStyle)
	return opts
}

// forwardWatcher posts file change events to the event loop.
func (app *Application) forwardWatcher(be backend.Backend) {
	log := app.logger.WithComponent("watcher")
	events, errs := app.watcher.Events(), app.watcher.Errors()
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			log.Debug("%s %s", ev.Op, ev.Path)
			be.PostEvent(backend.InterruptEvent(ev))
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// runInitScript runs the configured Lua script against the session.
// Failures are reported on the status line.
func (app *Application) runInitScript() {
	path := app.config.Editor().InitScript
	if path == "" {
		return
	}

	log := app.logger.WithComponent("lua")
	err := app.safely(func() error {
		return lua.RunFile(context.Background(), path, app.session, lua.WithPrint(func(s string) {
			log.Info("%s", s)
		}))
	})
	if err != nil {
		log.Error("script %s: %v", path, err)
		app.session.SetMessage("script failed: " + path)
		return
	}
	log.Info("ran %s", path)
}

// eventLoop renders and handles events until quit or Shutdown. A panic
// while handling an event ends the loop with a RecoveredPanicError.
func (app *Application) eventLoop(be backend.Backend) error {
	for !app.stopped() {
		app.renderer.Render(app.session.Buffer(), app.session.Cursor(), app.session.Status())

		ev := be.PollEvent()
		if app.stopped() {
			return nil
		}

		err := app.safely(func() error { return app.handleEvent(ev) })
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			app.logger.Info("quit")
			return nil
		default:
			app.logger.Error("event %d: %v", ev.Type, err)
			// A broken engine contract leaves the document in an unknown state.
			var panicErr *RecoveredPanicError
			if errors.As(err, &panicErr) {
				return err
			}
			app.session.SetMessage(err.Error())
		}
	}
	return nil
}

// safely runs fn, converting a panic into a RecoveredPanicError.
func (app *Application) safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()
	return fn()
}

// handleEvent processes one backend event. It returns ErrQuit when the
// application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.renderer.Resize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		if _, ok := ev.Data.(storage.Event); ok {
			app.session.CheckDisk()
		}
	case backend.EventKey:
		action, ok := app.handler.Handle(ev)
		if !ok {
			return nil
		}
		return app.handleAction(action)
	}
	return nil
}

// handleAction applies an action to the session. The first quit with
// unsaved changes only warns.
func (app *Application) handleAction(a input.Action) error {
	app.session.SetMessage("")

	if a.Name == input.ActionQuit {
		if app.session.Modified() && !app.quitArmed {
			app.quitArmed = true
			app.session.SetMessage("unsaved changes, quit again to discard")
			return nil
		}
		return ErrQuit
	}
	app.quitArmed = false

	return app.session.Apply(a)
}

// stopped reports whether Shutdown has been called.
func (app *Application) stopped() bool {
	select {
	case <-app.done:
		return true
	default:
		return false
	}
}

// Shutdown stops the event loop and releases resources. It is safe to
// call more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)

		app.mu.Lock()
		be := app.backend
		app.mu.Unlock()
		if be != nil && app.running.Load() {
			be.PostEvent(backend.InterruptEvent(shutdownSignal{}))
		}

		if err := app.closeResources(); err != nil {
			app.logger.Warn("shutdown: %v", err)
		}
	})
}

// closeResources closes the watcher and log file.
func (app *Application) closeResources() error {
	var errs ErrorList
	if app.watcher != nil {
		errs.Add(app.watcher.Close())
	}
	if app.logCloser != nil {
		app.logger.Info("shutdown")
		errs.Add(app.logCloser.Close())
		app.logCloser = nil
	}
	return errs.AsError()
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Session returns the open document session.
func (app *Application) Session() *Session {
	return app.session
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
