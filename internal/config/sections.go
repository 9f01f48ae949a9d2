package config

import (
	"cmp"
	"errors"
	"slices"

	"github.com/dshills/elditor/internal/config/loader"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration.

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// TabWidth is the display width of a tab and the number of spaces
	// inserted for Tab when ExpandTabs is set.
	TabWidth int

	// ExpandTabs inserts spaces instead of a tab character.
	ExpandTabs bool

	// ScrollOff is the minimum number of lines kept above and below the caret.
	ScrollOff int

	// InitScript is a Lua file run once after the document is opened.
	InitScript string
}

// UIConfig holds display settings.
type UIConfig struct {
	// ShowStatusLine shows the status line at the bottom.
	ShowStatusLine bool

	// SelectionStyle is the style of selected text.
	SelectionStyle string

	// CaretStyle is the style of the caret cell when nothing is selected.
	CaretStyle string
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string

	// File is the log destination. Empty discards log output.
	File string
}

// Styles accepted by SelectionStyle and CaretStyle.
var Styles = []string{"underline", "reverse", "bold", "none"}

// LogLevels accepted by LogConfig.Level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Editor returns the editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		TabWidth:   c.getIntOr("editor.tabWidth", 4),
		ExpandTabs: c.getBoolOr("editor.expandTabs", false),
		ScrollOff:  c.getIntOr("editor.scrollOff", 2),
		InitScript: loader.ExpandEnvInString(c.getStringOr("editor.initScript", "")),
	}
}

// UI returns the display settings.
func (c *Config) UI() UIConfig {
	return UIConfig{
		ShowStatusLine: c.getBoolOr("ui.showStatusLine", true),
		SelectionStyle: c.getStringOr("ui.selectionStyle", "underline"),
		CaretStyle:     c.getStringOr("ui.caretStyle", "reverse"),
	}
}

// Log returns the logging settings.
func (c *Config) Log() LogConfig {
	return LogConfig{
		Level: c.getStringOr("log.level", "info"),
		File:  loader.ExpandEnvInString(c.getStringOr("log.file", "")),
	}
}

// Keys returns the user key bindings from the "keys" table, mapping a
// key specification such as "Ctrl+S" to an action name. Entries whose
// value is not a string are skipped and recorded as config errors.
func (c *Config) Keys() map[string]string {
	v, ok := c.Get("keys")
	if !ok {
		return map[string]string{}
	}
	table, ok := v.(map[string]any)
	if !ok {
		c.recordConfigError("keys", &TypeError{Path: "keys", Expected: "table", Actual: typeName(v)})
		return map[string]string{}
	}

	keys := make(map[string]string, len(table))
	for spec, action := range table {
		name, ok := action.(string)
		if !ok {
			path := "keys." + spec
			c.recordConfigError(path, &TypeError{Path: path, Expected: "string", Actual: typeName(action)})
			continue
		}
		keys[spec] = name
	}
	return keys
}

// Validate checks every typed setting and reports all failures at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	editor := c.Editor()
	if editor.TabWidth < 1 || editor.TabWidth > 16 {
		errs = append(errs, &ValidationError{Path: "editor.tabWidth", Message: "must be between 1 and 16", Value: editor.TabWidth})
	}
	if editor.ScrollOff < 0 {
		errs = append(errs, &ValidationError{Path: "editor.scrollOff", Message: "must not be negative", Value: editor.ScrollOff})
	}

	ui := c.UI()
	if !slices.Contains(Styles, ui.SelectionStyle) {
		errs = append(errs, &ValidationError{Path: "ui.selectionStyle", Message: "unknown style", Value: ui.SelectionStyle})
	}
	if !slices.Contains(Styles, ui.CaretStyle) {
		errs = append(errs, &ValidationError{Path: "ui.caretStyle", Message: "unknown style", Value: ui.CaretStyle})
	}

	if lvl := c.Log().Level; !slices.Contains(LogLevels, lvl) {
		errs = append(errs, &ValidationError{Path: "log.level", Message: "unknown level", Value: lvl})
	}

	c.Keys()
	for path, err := range c.ConfigErrors() {
		errs = append(errs, &ValidationError{Path: path, Message: err.Error()})
	}

	if len(errs) == 0 {
		return nil
	}
	slices.SortFunc(errs, func(a, b *ValidationError) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return errs
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		c.recordConfigError(path, err)
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		c.recordConfigError(path, err)
		return defaultValue
	}
	return v
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		c.recordConfigError(path, err)
		return defaultValue
	}
	return v
}

// recordConfigError stores type errors for later retrieval.
// Only the first error for each path is kept.
func (c *Config) recordConfigError(path string, err error) {
	if errors.Is(err, ErrSettingNotFound) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}
