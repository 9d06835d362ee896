package griddata

import (
	"testing"

	"github.com/artpeixoto/fam/internal/cpu"
	"github.com/artpeixoto/fam/internal/grid"
)

type fakeFootprint struct {
	rects []grid.Rect
}

func (f fakeFootprint) Footprint() []grid.Rect { return f.rects }

func TestGetPortGridDataLookup(t *testing.T) {
	ep := cpu.RegisterEndpoint(3, cpu.RegisterOutput)
	layout := Layout{
		ep: {Position: grid.Pos{X: 4, Y: 2}, Direction: grid.Right},
	}
	g := NewCpuGridData(layout)

	defns, ok := g.GetPortGridData(ep)
	if !ok {
		t.Fatalf("expected layout entry for %v", ep)
	}
	if defns.Position != (grid.Pos{X: 4, Y: 2}) || defns.Direction != grid.Right {
		t.Fatalf("unexpected port grid data: %+v", defns)
	}

	missing := cpu.RegisterEndpoint(9, cpu.RegisterInput)
	if _, ok := g.GetPortGridData(missing); ok {
		t.Fatalf("expected no layout entry for unconfigured endpoint")
	}
}

func TestPortPositionImplementsRouterInterface(t *testing.T) {
	ep := cpu.MainMemoryEndpoint()
	layout := Layout{ep: {Position: grid.Pos{X: 1, Y: 1}, Direction: grid.Up}}
	g := NewCpuGridData(layout)

	pos, ok := g.PortPosition(ep)
	if !ok || pos != (grid.Pos{X: 1, Y: 1}) {
		t.Fatalf("PortPosition mismatch: %v %v", pos, ok)
	}
}

func TestUpdateBlockedPointsUnionsFootprints(t *testing.T) {
	comp1 := fakeFootprint{rects: []grid.Rect{grid.NewRect(grid.Pos{X: 0, Y: 0}, grid.Size{X: 2, Y: 1})}}
	comp2 := fakeFootprint{rects: []grid.Rect{grid.NewRect(grid.Pos{X: 5, Y: 5}, grid.Size{X: 1, Y: 1})}}

	g := NewCpuGridData(Layout{}, comp1, comp2)
	blocked := g.BlockedPoints()

	if blocked.IsAvailable(grid.Pos{X: 0, Y: 0}) || blocked.IsAvailable(grid.Pos{X: 1, Y: 0}) {
		t.Fatalf("expected comp1's footprint blocked")
	}
	if blocked.IsAvailable(grid.Pos{X: 5, Y: 5}) {
		t.Fatalf("expected comp2's footprint blocked")
	}
	if !blocked.IsAvailable(grid.Pos{X: 9, Y: 9}) {
		t.Fatalf("unrelated point should remain available")
	}
}

func TestProgramCounterPosition(t *testing.T) {
	g := NewCpuGridData(Layout{})
	if _, ok := g.ProgramCounterPosition(); ok {
		t.Fatalf("expected no PC position before it is set")
	}
	g.SetProgramCounterPosition(grid.Pos{X: 3, Y: 3})
	pos, ok := g.ProgramCounterPosition()
	if !ok || pos != (grid.Pos{X: 3, Y: 3}) {
		t.Fatalf("unexpected PC position: %v %v", pos, ok)
	}
}
