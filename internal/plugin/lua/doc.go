// Package lua runs user scripts against the editor.
//
// Scripts execute in a sandboxed gopher-lua state that only has the
// base, table, string and math libraries. File loading functions are
// removed and print is redirected to a Go callback.
//
// # State
//
//	state := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	defer state.Close()
//
//	if err := state.DoString(ctx, `x = 1 + 1`); err != nil {
//	    return err
//	}
//
// # Editor module
//
// OpenEditor installs a global "editor" table bound to an Editor:
//
//	editor.insert("hello\n")
//	editor.move("up", true)       -- extend the selection upward
//	local row, col = editor.cursor() -- 1-based
//	editor.message(editor.selected_text())
//
// Rows and columns are 1-based on the Lua side.
package lua
