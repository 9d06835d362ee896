package router

import "github.com/artpeixoto/fam/internal/grid"

// Path is an orthogonal polyline through the grid: a starting point plus an
// ordered sequence of directions. It carries no absolute positions beyond
// the start — every other point on the path is derived by walking it.
type Path struct {
	StartingPoint grid.Pos
	Movements     []grid.Direction
}

// Walk returns a restartable, lazy iterator over the path's movements. It
// is restartable because Walker holds its own cursor state independent of
// Path; calling Walk again starts over from StartingPoint.
func (p Path) Walk() *Walker {
	return &Walker{path: p, pos: p.StartingPoint}
}

// Walker produces the path's movements one at a time. Walking chains by
// construction: Walker.pos carries each movement's destination directly
// into the next movement's starting point.
type Walker struct {
	path Path
	ix   int
	pos  grid.Pos
}

// Next returns the next movement on the path, or false once exhausted.
func (w *Walker) Next() (grid.Movement, bool) {
	if w.ix >= len(w.path.Movements) {
		return grid.Movement{}, false
	}
	m := w.pos.Go(w.path.Movements[w.ix])
	w.pos = m.Dest
	w.ix++
	return m, true
}

// AllMovements materializes every movement on the path in order.
// Convenience wrapper around Walk for callers that don't need laziness
// (e.g. building the forbidden-line/point sets below).
func (p Path) AllMovements() []grid.Movement {
	out := make([]grid.Movement, 0, len(p.Movements))
	w := p.Walk()
	for {
		m, ok := w.Next()
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}
