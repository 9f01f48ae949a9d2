package layout

// DefaultTabStops is used when a non-positive tab width is configured.
const DefaultTabStops TabStops = 4

// TabStops places a tab stop every n display columns.
type TabStops int

// NewTabStops returns tab stops every width columns.
func NewTabStops(width int) TabStops {
	if width < 1 {
		return DefaultTabStops
	}
	return TabStops(width)
}

// Fill returns how many cells a tab starting at display column col
// occupies. It is always between 1 and the tab width.
func (t TabStops) Fill(col int) int {
	n := int(t)
	return n - col%n
}

// Next returns the first tab stop after col.
func (t TabStops) Next(col int) int {
	return col + t.Fill(col)
}
