package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/elditor/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "ELDITOR_"

// userConfigNames are tried in order inside the user config directory.
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

// Config provides unified access to the elditor configuration.
type Config struct {
	mu sync.RWMutex

	// Layers, lowest priority first
	defaults map[string]any
	user     map[string]any
	env      map[string]any
	flags    map[string]any

	merged map[string]any

	// Configuration paths
	userConfigDir string
	configFile    string
	source        string

	// configErrors stores errors encountered during typed access.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithUserConfigDir sets the directory searched for a user config file.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithConfigFile sets an explicit config file. Unlike the user config
// directory, a missing explicit file is an error.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// New creates a Config holding only the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		defaults: defaultConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}

	c.rebuild()
	return c
}

// Load reads the user config file and the environment.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	user, source, err := c.loadUserSettings()
	if err != nil {
		return err
	}

	env, err := loader.NewEnvLoader(EnvPrefix).Load()
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}

	c.user = user
	c.source = source
	c.env = env
	c.configErrors = nil
	c.rebuild()
	return nil
}

// Source returns the config file that was loaded, or "" if none.
func (c *Config) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// Set overrides a value in the flags layer, the highest priority layer.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.flags == nil {
		c.flags = make(map[string]any)
	}
	if err := setPath(c.flags, path, value); err != nil {
		return err
	}

	c.rebuild()
	return nil
}

// ConfigErrors returns the type errors hit by the section accessors.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		out[k] = v
	}
	return out
}

// rebuild recomputes the merged view. Callers must hold c.mu.
func (c *Config) rebuild() {
	c.merged = loader.Merge(c.defaults, c.user, c.env, c.flags)
}

// loadUserSettings reads the explicit config file if one was given,
// otherwise the first config file found in the user config directory.
func (c *Config) loadUserSettings() (map[string]any, string, error) {
	if c.configFile != "" {
		if _, err := os.Stat(c.configFile); err != nil {
			return nil, "", fmt.Errorf("config file %s: %w", c.configFile, err)
		}
		data, err := loadFile(c.configFile)
		return data, c.configFile, err
	}

	for _, name := range userConfigNames {
		path := filepath.Join(c.userConfigDir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, "", err
		}
		data, err := loadFile(path)
		return data, path, err
	}
	return nil, "", nil
}

func loadFile(path string) (map[string]any, error) {
	l, err := loader.ForPath(path)
	if err != nil {
		return nil, err
	}
	return l.Load()
}

func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "elditor")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "elditor")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tabWidth":   4,
			"expandTabs": false,
			"scrollOff":  2,
			"initScript": "",
		},
		"ui": map[string]any{
			"showStatusLine": true,
			"selectionStyle": "underline",
			"caretStyle":     "reverse",
		},
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}

	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into non-empty parts.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '.' })
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
