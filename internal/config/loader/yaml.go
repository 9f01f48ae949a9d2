package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML decodes .yaml and .yml files with yaml.v3. Integers become int64
// so both formats produce the same value types.
var YAML = Format{
	Name:       "yaml",
	Extensions: []string{".yaml", ".yml"},
	decode:     decodeYAML,
}

func decodeYAML(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{
			Path:    source,
			Line:    yamlErrorLine(err.Error()),
			Message: err.Error(),
			Err:     err,
		}
	}
	return widenInts(m).(map[string]any), nil
}

// yamlErrorLine extracts N from yaml.v3's "yaml: line N: ..." messages.
func yamlErrorLine(msg string) int {
	var line int
	if _, err := fmt.Sscanf(msg, "yaml: line %d:", &line); err != nil {
		return 0
	}
	return line
}

// widenInts returns v with every int replaced by int64.
func widenInts(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case map[string]any:
		for k, e := range val {
			val[k] = widenInts(e)
		}
	case []any:
		for i, e := range val {
			val[i] = widenInts(e)
		}
	}
	return v
}
