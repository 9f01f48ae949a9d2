// Package core provides shared types for the renderer subsystem.
// It breaks the import cycle between renderer and backend.
package core

import (
	"github.com/mattn/go-runewidth"
)

// Attribute is a set of text attributes.
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << (iota - 1)
	AttrUnderline
	AttrReverse
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style is the visual style of a cell. The editor draws in the terminal's
// own colors and only varies attributes.
type Style struct {
	Attributes Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{}
}

// Bold returns a new style with bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Underline returns a new style with underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Reverse returns a new style with reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Merge layers other on top of s. Attributes accumulate.
func (s Style) Merge(other Style) Style {
	s.Attributes |= other.Attributes
	return s
}

// StyleNamed returns the style for a configured name: "underline",
// "reverse", "bold" or "none". Unknown names yield the default style.
func StyleNamed(name string) Style {
	switch name {
	case "underline":
		return DefaultStyle().Underline()
	case "reverse":
		return DefaultStyle().Reverse()
	case "bold":
		return DefaultStyle().Bold()
	default:
		return DefaultStyle()
	}
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of this cell. Zero marks the right half
	// of a wide character.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// ContinuationCell returns the placeholder that follows a wide character.
func ContinuationCell() Cell {
	return Cell{Style: DefaultStyle()}
}

// IsContinuation returns true if this is a continuation cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// RuneWidth returns the display width of a rune. Control characters have
// width 0; East Asian wide characters and most emoji have width 2.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width display columns.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
