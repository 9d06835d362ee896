package grid

import "testing"

func TestGoInvariant(t *testing.T) {
	// starting + direction = destination, and Line is the unique edge between them.
	for _, dir := range AllDirections() {
		start := Pos{X: 5, Y: 5}
		m := start.Go(dir)
		if m.Start != start {
			t.Fatalf("Go(%v): starting point changed: got %v, want %v", dir, m.Start, start)
		}
		pts := m.Line.Points()
		if pts[0] != start && pts[1] != start {
			t.Fatalf("Go(%v): line %v does not touch starting point %v", dir, m.Line, start)
		}
		if pts[0] != m.Dest && pts[1] != m.Dest {
			t.Fatalf("Go(%v): line %v does not touch destination %v", dir, m.Line, m.Dest)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.RotateCW().RotateCCW() != dir {
			t.Fatalf("RotateCW then RotateCCW changed %v", dir)
		}
		if dir.Opposite().Opposite() != dir {
			t.Fatalf("double Opposite changed %v", dir)
		}
		if dir.RotateCW() == dir.Opposite() {
			t.Fatalf("RotateCW should never equal Opposite for %v", dir)
		}
	}
}

func TestAllMovesExcludesOutOfBoundsAtOrigin(t *testing.T) {
	moves := (Pos{X: 0, Y: 0}).AllMoves()
	for _, m := range moves {
		if m.Dir == Up || m.Dir == Left {
			t.Fatalf("AllMoves() at origin should exclude Up/Left, got %v", m.Dir)
		}
	}
	if len(moves) != 2 {
		t.Fatalf("AllMoves() at origin: got %d moves, want 2", len(moves))
	}
}

func TestLineSharedByAdjacentCells(t *testing.T) {
	a := Pos{X: 3, Y: 4}
	right := a.Go(Right)
	fromRight := right.Dest.Go(Left)
	if right.Line != fromRight.Line {
		t.Fatalf("adjacent cells should share one line: %v != %v", right.Line, fromRight.Line)
	}
}

func TestBlockedPoints(t *testing.T) {
	b := NewBlockedPoints()
	p := Pos{X: 1, Y: 1}
	if !b.IsAvailable(p) {
		t.Fatalf("fresh BlockedPoints should have no blocked points")
	}
	b.Add(p)
	if b.IsAvailable(p) {
		t.Fatalf("added point should be blocked")
	}

	other := NewBlockedPoints()
	other.Add(Pos{X: 2, Y: 2})
	b.AddFrom(other)
	if b.IsAvailable(Pos{X: 2, Y: 2}) {
		t.Fatalf("AddFrom should merge blocked points")
	}
}

func TestRectPoints(t *testing.T) {
	r := NewRect(Pos{X: 0, Y: 0}, Size{X: 2, Y: 2})
	pts := r.Points()
	if len(pts) != 4 {
		t.Fatalf("2x2 rect should yield 4 points, got %d", len(pts))
	}
}

func TestRectFromPointsOrdersCorners(t *testing.T) {
	r := NewRectFromPoints(Pos{X: 5, Y: 5}, Pos{X: 1, Y: 2})
	if r.TopLeft != (Pos{X: 1, Y: 2}) {
		t.Fatalf("expected top-left (1,2), got %v", r.TopLeft)
	}
	if r.Size != (Size{X: 4, Y: 3}) {
		t.Fatalf("expected size (4,3), got %v", r.Size)
	}
}

func TestLimitsContains(t *testing.T) {
	l := Limits{Min: Pos{X: 0, Y: 0}, Max: Pos{X: 10, Y: 10}}
	if !l.Contains(Pos{X: 5, Y: 5}) {
		t.Fatalf("expected (5,5) within limits")
	}
	if l.Contains(Pos{X: 11, Y: 0}) {
		t.Fatalf("expected (11,0) outside limits")
	}
	line := Line{Index: Pos{X: 10, Y: 10}, Axis: Horizontal}
	if l.ContainsLine(line) {
		t.Fatalf("line extending past Max should not be contained")
	}
}
