package loader

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestFileLoader_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte(`
[editor]
tabWidth = 2
expandTabs = true

[log]
level = "debug"
`)},
		"config.yaml": {Data: []byte(`
editor:
  tabWidth: 2
  expandTabs: true
log:
  level: debug
`)},
	}

	want := map[string]any{
		"editor": map[string]any{"tabWidth": int64(2), "expandTabs": true},
		"log":    map[string]any{"level": "debug"},
	}

	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			l, err := ForPath(name)
			if err != nil {
				t.Fatalf("ForPath() error = %v", err)
			}
			got, err := l.WithFS(fsys).Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileLoader_Missing(t *testing.T) {
	fsys := fstest.MapFS{}

	for _, format := range Formats {
		got, err := NewFileLoader("nope"+format.Extensions[0], format).WithFS(fsys).Load()
		if err != nil || got != nil {
			t.Errorf("%s: expected nil, nil for missing file, got %v, %v", format.Name, got, err)
		}
	}
}

func TestFileLoader_NestedYAMLInts(t *testing.T) {
	got, err := NewFileLoader("", YAML).Decode(strings.NewReader("keys:\n  list: [1, 2]\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := map[string]any{"keys": map[string]any{"list": []any{int64(1), int64(2)}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestTOML_ParseError(t *testing.T) {
	_, err := NewFileLoader("", TOML).Decode(strings.NewReader("[editor\ntabWidth = 2"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 1 {
		t.Errorf("expected line 1, got %d", perr.Line)
	}
	if !strings.HasPrefix(perr.Error(), "<reader>:1:") {
		t.Errorf("Error() = %q", perr.Error())
	}
}

func TestYAML_ParseError(t *testing.T) {
	_, err := NewFileLoader("", YAML).Decode(strings.NewReader("editor: [unclosed"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Path != "<reader>" {
		t.Errorf("expected path <reader>, got %q", perr.Path)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  ParseError
		want string
	}{
		{ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "a.toml:3:7: bad"},
		{ParseError{Path: "a.yaml", Line: 2, Message: "bad"}, "a.yaml:2: bad"},
		{ParseError{Path: "a.yaml", Message: "bad"}, "a.yaml: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.toml", "toml", false},
		{"a.YAML", "yaml", false},
		{"a.yml", "yaml", false},
		{"a.json", "", true},
		{"config", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath error = %v", err)
			}
			if l.Format().Name != tt.want || l.Path() != tt.path {
				t.Errorf("ForPath(%q) = %s loader for %q", tt.path, l.Format().Name, l.Path())
			}
		})
	}
}

func TestMerge(t *testing.T) {
	defaults := map[string]any{
		"editor": map[string]any{"tabWidth": 4, "expandTabs": false},
		"log":    map[string]any{"level": "info"},
	}
	user := map[string]any{
		"editor": map[string]any{"tabWidth": 8},
		"ui":     map[string]any{"caretStyle": "bold"},
	}
	flags := map[string]any{"log": map[string]any{"level": "debug"}}

	got := Merge(defaults, user, nil, flags)

	want := map[string]any{
		"editor": map[string]any{"tabWidth": 8, "expandTabs": false},
		"log":    map[string]any{"level": "debug"},
		"ui":     map[string]any{"caretStyle": "bold"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
	if defaults["editor"].(map[string]any)["tabWidth"] != 4 {
		t.Error("Merge modified a layer")
	}
}

func TestMerge_ScalarReplacesTable(t *testing.T) {
	got := Merge(
		map[string]any{"keys": map[string]any{"Ctrl+S": "file.save"}},
		map[string]any{"keys": "none"},
	)
	if got["keys"] != "none" {
		t.Errorf("keys = %v, want scalar from later layer", got["keys"])
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"editor": map[string]any{"tabWidth": 4},
		"list":   []any{map[string]any{"a": 1}},
	}

	dst := Clone(src)
	dst["editor"].(map[string]any)["tabWidth"] = 2
	dst["list"].([]any)[0].(map[string]any)["a"] = 2

	if src["editor"].(map[string]any)["tabWidth"] != 4 {
		t.Error("Clone should not share nested maps")
	}
	if src["list"].([]any)[0].(map[string]any)["a"] != 1 {
		t.Error("Clone should not share maps inside slices")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
