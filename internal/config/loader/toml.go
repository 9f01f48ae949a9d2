package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOML decodes .toml files with go-toml.
var TOML = Format{
	Name:       "toml",
	Extensions: []string{".toml"},
	decode:     decodeTOML,
}

func decodeTOML(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	err := toml.Unmarshal(data, &m)
	if err == nil {
		return m, nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
	}
	return nil, perr
}
