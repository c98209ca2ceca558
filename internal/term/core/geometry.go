package core

// Unspecified is the sentinel for an omitted cursor coordinate.
const Unspecified = -1

// Rect is a rectangle of terminal cells, 0-indexed, measured in lines
// and columns.
type Rect struct {
	Top, Left   int
	Lines, Cols int
}

// NewRect creates a rectangle from its top-left corner and extent.
func NewRect(top, left, lines, cols int) Rect {
	return Rect{Top: top, Left: left, Lines: lines, Cols: cols}
}

// Bottom returns the line just past the rectangle's last line.
func (r Rect) Bottom() int { return r.Top + r.Lines }

// Right returns the column just past the rectangle's last column.
func (r Rect) Right() int { return r.Left + r.Cols }

// Empty returns true if the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Lines <= 0 || r.Cols <= 0 }
