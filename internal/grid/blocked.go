package grid

// BlockedPoints is the set of grid positions that a routed path must not
// cross, derived from the union of every component's footprint.
type BlockedPoints struct {
	points map[Pos]struct{}
}

// NewBlockedPoints returns an empty blocked-point set.
func NewBlockedPoints() *BlockedPoints {
	return &BlockedPoints{points: make(map[Pos]struct{})}
}

// Add marks p as blocked.
func (b *BlockedPoints) Add(p Pos) {
	b.points[p] = struct{}{}
}

// AddRect marks every point in r as blocked.
func (b *BlockedPoints) AddRect(r Rect) {
	for _, p := range r.Points() {
		b.Add(p)
	}
}

// AddFrom unions another set's points into b.
func (b *BlockedPoints) AddFrom(other *BlockedPoints) {
	if other == nil {
		return
	}
	for p := range other.points {
		b.Add(p)
	}
}

// IsAvailable reports whether p is free to route through.
func (b *BlockedPoints) IsAvailable(p Pos) bool {
	_, blocked := b.points[p]
	return !blocked
}

// Limits describes the inclusive bounds of the routable grid.
type Limits struct {
	Min, Max Pos
}

// Contains reports whether p lies within the grid bounds.
func (l Limits) Contains(p Pos) bool {
	return p.X >= l.Min.X && p.X <= l.Max.X && p.Y >= l.Min.Y && p.Y <= l.Max.Y
}

// ContainsLine reports whether both endpoints of a line lie within bounds.
func (l Limits) ContainsLine(line Line) bool {
	pts := line.Points()
	return l.Contains(pts[0]) && l.Contains(pts[1])
}
