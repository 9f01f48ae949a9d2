package renderer

import (
	"fmt"
	"strings"

	"github.com/dshills/elditor/internal/renderer/core"
)

// StatusInfo is the state shown on the status line.
type StatusInfo struct {
	Name     string
	Modified bool
	Row      int // 0-indexed, shown 1-indexed
	Col      int // 0-indexed, shown 1-indexed
	Message  string
}

// FormatStatus lays out the status line for the given width. The file
// name, modified flag and message are left aligned and the caret
// position is right aligned. The left part is truncated first.
func FormatStatus(info StatusInfo, width int) string {
	if width <= 0 {
		return ""
	}

	left := " " + info.Name
	if info.Modified {
		left += " [+]"
	}
	if info.Message != "" {
		left += "  " + info.Message
	}
	right := fmt.Sprintf("%d:%d ", info.Row+1, info.Col+1)

	rightWidth := core.StringWidth(right)
	if rightWidth >= width {
		return core.Truncate(right, width)
	}

	left = core.Truncate(left, width-rightWidth-1)
	gap := width - core.StringWidth(left) - rightWidth
	return left + strings.Repeat(" ", gap) + right
}
