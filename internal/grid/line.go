package grid

// Line is an edge of the grid, identified by its lowest-coordinate endpoint
// and an axis. The horizontal line at (x,y) connects (x,y) to (x+1,y); the
// vertical line at (x,y) connects (x,y) to (x,y+1). Two grid cells that are
// adjacent share exactly one Line.
type Line struct {
	Index Pos
	Axis  Axis
}

// Points returns the two endpoints the line connects.
func (l Line) Points() [2]Pos {
	first := l.Index
	var second Pos
	switch l.Axis {
	case Horizontal:
		second = Pos{X: first.X + 1, Y: first.Y}
	case Vertical:
		second = Pos{X: first.X, Y: first.Y + 1}
	}
	return [2]Pos{first, second}
}
