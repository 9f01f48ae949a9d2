package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader reads settings from environment variables that start with a
// prefix. ELDITOR_EDITOR_TAB_WIDTH sets editor.tabWidth: the first word
// names the table and the rest form the camelCase key. Aliases map whole
// variable names to paths and win over the derived path.
type EnvLoader struct {
	prefix  string
	aliases map[string]string
}

// NewEnvLoader creates a loader for prefix, which should include the
// trailing underscore, with the built-in short aliases.
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, map[string]string{
		prefix + "LOG_LEVEL":   "log.level",
		prefix + "LOG_FILE":    "log.file",
		prefix + "TAB_WIDTH":   "editor.tabWidth",
		prefix + "EXPAND_TABS": "editor.expandTabs",
		prefix + "SCROLL_OFF":  "editor.scrollOff",
		prefix + "INIT_SCRIPT": "editor.initScript",
	})
}

// NewEnvLoaderWithMapping creates a loader with the given aliases only.
func NewEnvLoaderWithMapping(prefix string, aliases map[string]string) *EnvLoader {
	return &EnvLoader{prefix: prefix, aliases: aliases}
}

// Load collects every prefixed variable. Empty values are kept.
func (l *EnvLoader) Load() (map[string]any, error) {
	out := make(map[string]any)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, aliased := l.aliases[name]
		if !aliased {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(out, path, l.parseValue(value))
	}
	return out, nil
}

// envToPath derives the setting path for a prefixed variable name.
func (l *EnvLoader) envToPath(name string) string {
	words := strings.FieldsFunc(strings.TrimPrefix(name, l.prefix), func(r rune) bool { return r == '_' })
	if len(words) == 0 {
		return ""
	}

	table := strings.ToLower(words[0])
	if len(words) == 1 {
		return table
	}

	var key strings.Builder
	key.WriteString(strings.ToLower(words[1]))
	for _, w := range words[2:] {
		w = strings.ToLower(w)
		key.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return table + "." + key.String()
}

// parseValue converts s to a bool, int64 or float64 when it reads as one.
func (l *EnvLoader) parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// setByPath stores value at a dotted path, creating tables as needed.
func setByPath(m map[string]any, path string, value any) {
	keys := strings.Split(path, ".")
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = value
}

// ExpandEnvInString expands $VAR and ${VAR} references in s.
func ExpandEnvInString(s string) string {
	return os.ExpandEnv(s)
}
