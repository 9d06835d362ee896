// Package griddata is the metadata surface an external renderer consumes:
// where each connection endpoint's port sits on the grid and which way it
// faces, and the union of blocked points every component footprint
// contributes. The renderer itself, and the component layout/placement
// that assigns concrete grid rectangles, both live outside this module;
// this package only carries the produced-by-core contract, accepting a
// caller-supplied layout rather than computing one.
package griddata

import (
	"github.com/artpeixoto/fam/internal/cpu"
	"github.com/artpeixoto/fam/internal/grid"
)

// PortGridDefns describes where a single port sits and which way it
// faces.
type PortGridDefns struct {
	Position  grid.Pos
	Direction grid.Direction
}

// Layout supplies the grid position/direction of every routable endpoint.
// Building a Layout (assigning registers, TALUs, the controller and
// instruction memory concrete grid rectangles) is the placement layer's
// job — Layout is accepted from the caller, not computed here.
type Layout map[cpu.Endpoint]PortGridDefns

// ComponentFootprint is implemented by anything that occupies grid cells
// and therefore contributes to the blocked-point set. The core component
// types (register bank, TALU bank, controller, instruction memory) do not
// implement it themselves; the caller supplies one implementation per
// placed component.
type ComponentFootprint interface {
	Footprint() []grid.Rect
}

// CpuGridData aggregates a tick's rendering-collaborator metadata: the
// port-position lookup the router consumes (it implements
// router.PortPositions), the union of every component's blocked points,
// and the instruction memory's current program-counter position for
// highlight purposes.
type CpuGridData struct {
	layout         Layout
	blockedPoints  *grid.BlockedPoints
	components     []ComponentFootprint
	programCounter grid.Pos
	haveProgramPos bool
}

// NewCpuGridData returns a CpuGridData over the given per-port layout and
// component footprint contributors. Call UpdateBlockedPoints once the
// component set is final and whenever it changes.
func NewCpuGridData(layout Layout, components ...ComponentFootprint) *CpuGridData {
	g := &CpuGridData{
		layout:     layout,
		components: components,
	}
	g.UpdateBlockedPoints()
	return g
}

// GetPortGridData returns the position/direction of endpoint's port, and
// whether the layout has an entry for it. A single map lookup suffices
// since Layout already keys by the same Endpoint tagged union the core
// uses.
func (g *CpuGridData) GetPortGridData(endpoint cpu.Endpoint) (PortGridDefns, bool) {
	defns, ok := g.layout[endpoint]
	return defns, ok
}

// PortPosition implements router.PortPositions, letting CpuGridData feed
// the router directly without the router package depending on griddata.
func (g *CpuGridData) PortPosition(endpoint cpu.Endpoint) (grid.Pos, bool) {
	defns, ok := g.GetPortGridData(endpoint)
	if !ok {
		return grid.Pos{}, false
	}
	return defns.Position, true
}

// UpdateBlockedPoints recomputes BlockedPoints as the union of every
// component's footprint.
func (g *CpuGridData) UpdateBlockedPoints() {
	blocked := grid.NewBlockedPoints()
	for _, comp := range g.components {
		for _, rect := range comp.Footprint() {
			blocked.AddRect(rect)
		}
	}
	g.blockedPoints = blocked
}

// BlockedPoints returns the last computed blocked-point union.
func (g *CpuGridData) BlockedPoints() *grid.BlockedPoints {
	return g.blockedPoints
}

// SetProgramCounterPosition records where the instruction memory's current
// program counter sits on the grid, for the renderer's highlight.
func (g *CpuGridData) SetProgramCounterPosition(p grid.Pos) {
	g.programCounter = p
	g.haveProgramPos = true
}

// ProgramCounterPosition returns the last recorded PC position, and
// whether one has been set.
func (g *CpuGridData) ProgramCounterPosition() (grid.Pos, bool) {
	return g.programCounter, g.haveProgramPos
}
