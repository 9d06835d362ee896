// Package router implements the orthogonal A* grid router: given a tick's
// connection set, the netlists grouping their endpoints, a blocked-point
// set and the grid's bounds, it produces one Path per connection. Paths
// from connections already routed earlier in the same call are treated as
// "connected" (same netlist — sharing their lines is encouraged) or
// "unconnected" (different netlist — crossing their lines is penalized
// heavily).
package router

import (
	"log"
	"sort"

	"github.com/artpeixoto/fam/internal/cpu"
	"github.com/artpeixoto/fam/internal/grid"
	"github.com/artpeixoto/fam/internal/netlist"
)

// Paths maps each connection to the Path realizing it this tick.
type Paths map[cpu.Connection]Path

// PortPositions resolves a connection endpoint to the grid position of the
// port it names. Component layout/placement is out of this package's
// scope; callers supply their own implementation — internal/griddata's
// CpuGridData is the one this repo wires in.
type PortPositions interface {
	PortPosition(e cpu.Endpoint) (grid.Pos, bool)
}

// RouteTick computes a fresh Paths map for connections, in a stable
// deterministic order. The map is rebuilt from scratch every call — no
// caching across ticks — but connections routed earlier within this same
// call are visible as connected/unconnected context to connections routed
// later in the same call, which is what lets netlist siblings share grid
// segments.
//
// Routing aborts on the first failure, returning whatever was successfully
// routed so far and the *PathError describing the offending connection.
func RouteTick(
	connections []cpu.Connection,
	netlists *netlist.Netlists[cpu.Endpoint],
	blocked *grid.BlockedPoints,
	limits grid.Limits,
	positions PortPositions,
) (Paths, error) {
	ordered := make([]cpu.Connection, len(connections))
	copy(ordered, connections)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	paths := make(Paths, len(ordered))
	for _, conn := range ordered {
		if _, already := paths[conn]; already {
			continue
		}
		from, ok := positions.PortPosition(conn.First)
		if !ok {
			return paths, invalidStart(conn, OutOfBounds)
		}
		to, ok := positions.PortPosition(conn.Second)
		if !ok {
			return paths, invalidEnd(conn, OutOfBounds)
		}
		p, err := Route(conn, from, to, paths, netlists, blocked, limits)
		if err != nil {
			log.Printf("fam: routing aborted: %v", err)
			return paths, err
		}
		paths[conn] = p
	}
	return paths, nil
}

// Route finds a single Path for conn running from `from` to `to`,
// consulting existing (prior-tick or earlier-this-tick) paths to decide
// which grid lines/points to avoid (different netlist) or may be shared
// (same netlist).
func Route(
	conn cpu.Connection,
	from, to grid.Pos,
	existing Paths,
	netlists *netlist.Netlists[cpu.Endpoint],
	blocked *grid.BlockedPoints,
	limits grid.Limits,
) (Path, error) {
	connectedMovements, unconnectedMovements, connectedEndpoints := classify(existing, netlists, conn)

	forbiddenLines := map[grid.Line]struct{}{}
	forbiddenPoints := map[grid.Pos]struct{}{}
	for _, m := range unconnectedMovements {
		forbiddenLines[m.Line] = struct{}{}
		forbiddenPoints[m.Start] = struct{}{}
		forbiddenPoints[m.Dest] = struct{}{}
	}

	// Orientation swap: if a same-netlist path already reaches conn.First,
	// search from the side that has no pre-existing reach, since any
	// same-netlist point is an acceptable destination.
	if _, reached := connectedEndpoints[conn.First]; reached {
		from, to = to, from
	}

	allDestinationPoints := map[grid.Pos]struct{}{to: {}}
	for _, m := range connectedMovements {
		allDestinationPoints[m.Start] = struct{}{}
		allDestinationPoints[m.Dest] = struct{}{}
	}

	if !limits.Contains(from) {
		return Path{}, invalidStart(conn, OutOfBounds)
	}
	if !limits.Contains(to) {
		return Path{}, invalidEnd(conn, OutOfBounds)
	}

	return search(conn, from, allDestinationPoints, forbiddenLines, forbiddenPoints, blocked, limits)
}

func classify(existing Paths, netlists *netlist.Netlists[cpu.Endpoint], conn cpu.Connection) (connected, unconnected []grid.Movement, connectedEndpoints map[cpu.Endpoint]struct{}) {
	connectedEndpoints = map[cpu.Endpoint]struct{}{}
	for otherConn, path := range existing {
		if netlists.Same(otherConn.First, conn.First) {
			connectedEndpoints[otherConn.First] = struct{}{}
			connectedEndpoints[otherConn.Second] = struct{}{}
			connected = append(connected, path.AllMovements()...)
		} else {
			unconnected = append(unconnected, path.AllMovements()...)
		}
	}
	return connected, unconnected, connectedEndpoints
}
