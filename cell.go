package scrim

// Cell represents a single character cell on the terminal.
type Cell struct {
	Rune  rune
	Style Style
}

// invalidRune marks a cell as never-matching during the render diff.
// No Unicode scalar is negative, so no drawn cell can equal a cell
// holding it.
const invalidRune = rune(-1)

// EmptyCell returns a cell with a space and default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Equal returns true if two cells are equal.
func (c Cell) Equal(other Cell) bool {
	return c == other
}
