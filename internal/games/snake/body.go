package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Body is the snake as an ordered sequence of cells.
// Internally the tail sits at index 0 and the head at the end, so growing
// the head is an append and dropping the tail is a reslice.
type Body struct {
	cells []core.Cell
}

// NewBody creates a snake of length one at the given cell.
func NewBody(head core.Cell) *Body {
	return &Body{cells: []core.Cell{head}}
}

// NewBodyFrom creates a snake from head-first cells.
// Used by tests and scenarios that need a specific shape.
func NewBodyFrom(headFirst ...core.Cell) *Body {
	b := &Body{cells: make([]core.Cell, len(headFirst))}
	for i, c := range headFirst {
		b.cells[len(headFirst)-1-i] = c
	}
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Head returns the front cell.
func (b *Body) Head() core.Cell {
	return b.cells[len(b.cells)-1]
}

// Tail returns the back cell.
func (b *Body) Tail() core.Cell {
	return b.cells[0]
}

// Advance returns the cell the head would enter moving in dir.
func (b *Body) Advance(dir core.Direction) core.Cell {
	return b.Head().Add(dir.Offset())
}

// WillCollide reports whether newHead hits the body as it is before the move.
// The tail counts as an obstacle even though it would be vacated this tick.
func (b *Body) WillCollide(newHead core.Cell) bool {
	return b.Contains(newHead)
}

// CommitMove pushes newHead to the front and drops the tail unless grew.
func (b *Body) CommitMove(newHead core.Cell, grew bool) {
	b.cells = append(b.cells, newHead)
	if !grew {
		b.cells = b.cells[1:]
	}
}

// Contains reports whether any segment occupies c.
func (b *Body) Contains(c core.Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells returns a head-first copy of the segments.
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, len(b.cells))
	for i, c := range b.cells {
		out[len(b.cells)-1-i] = c
	}
	return out
}

// Occupied returns the set of cells covered by the snake.
func (b *Body) Occupied() map[core.Cell]struct{} {
	set := make(map[core.Cell]struct{}, len(b.cells)+1)
	for _, c := range b.cells {
		set[c] = struct{}{}
	}
	return set
}
