package engine

import (
	"fmt"

	"github.com/dshills/elditor/internal/engine/buffer"
)

// Errors returned by engine queries.
var (
	// ErrRowOutOfRange indicates a row outside [0, LineCount).
	ErrRowOutOfRange = buffer.ErrRowOutOfRange
)

// ContractError describes a broken precondition or invariant, such as a
// cursor point outside the document or an insert while selecting.
// It is never returned; TextBuffer panics with it because only an incorrect
// caller can trigger it.
type ContractError struct {
	Op     string // Operation that detected the violation
	Detail string // What was wrong
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("engine contract violated in %s: %s", e.Op, e.Detail)
}

// violate panics with a ContractError.
func violate(op, format string, args ...any) {
	panic(&ContractError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
