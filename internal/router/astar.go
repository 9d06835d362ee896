package router

import (
	"github.com/artpeixoto/fam/internal/cpu"
	"github.com/artpeixoto/fam/internal/grid"
)

// cost weights. From heaviest to lightest: revisiting a point already
// reached in this search, then leaving the grid bounds or reusing another
// netlist's line (equal weight), then touching a blocked point, then
// stepping onto another netlist's point; baseCost is the per-step length
// cost.
const (
	baseCost              = 1
	outOfBoundsPenalty    = 1000
	blockedPenalty        = 100
	forbiddenLinePenalty  = 1000
	forbiddenPointPenalty = 10
	revisitPenalty        = 10000
)

// searchNode is one expanded state in the A* search. Nodes live in an
// integer-indexed arena so the parent chain needs no pointer cycles:
// parent is an index into the same arena, -1 for the root.
type searchNode struct {
	parent    int
	parentDir grid.Direction
	pos       grid.Pos
	g, h      int
}

func (n searchNode) fullCost() int { return n.g + n.h }

// frontier is a priority queue keyed by full cost (g+h). Nodes of equal
// cost pop LIFO, which gives a deterministic tie-break.
type frontier struct {
	buckets map[int][]int
}

func newFrontier() *frontier {
	return &frontier{buckets: map[int][]int{}}
}

func (f *frontier) push(cost, nodeID int) {
	f.buckets[cost] = append(f.buckets[cost], nodeID)
}

func (f *frontier) popMin() (int, bool) {
	if len(f.buckets) == 0 {
		return 0, false
	}
	minCost := 0
	first := true
	for c := range f.buckets {
		if first || c < minCost {
			minCost = c
			first = false
		}
	}
	ids := f.buckets[minCost]
	id := ids[len(ids)-1]
	ids = ids[:len(ids)-1]
	if len(ids) == 0 {
		delete(f.buckets, minCost)
	} else {
		f.buckets[minCost] = ids
	}
	return id, true
}

func abs16(v int16) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

func manhattan(a, b grid.Pos) int {
	return abs16(a.X-b.X) + abs16(a.Y-b.Y)
}

// heuristic is the Manhattan distance from p to the nearest point in
// destinations — admissible for any single target, used here as a
// multi-target lower bound.
func heuristic(p grid.Pos, destinations map[grid.Pos]struct{}) int {
	best := -1
	for d := range destinations {
		dist := manhattan(p, d)
		if best == -1 || dist < best {
			best = dist
		}
	}
	return best
}

// moveCost assigns the weighted cost of taking movement m, given the set
// of points visited so far in this search. The visited penalty is a soft
// weight rather than a hard exclusion, so the search can still revisit a
// point when there is no cheaper alternative.
func moveCost(m grid.Movement, limits grid.Limits, blocked *grid.BlockedPoints, forbiddenLines map[grid.Line]struct{}, forbiddenPoints map[grid.Pos]struct{}, visited map[grid.Pos]struct{}) int {
	cost := baseCost

	if !limits.ContainsLine(m.Line) {
		cost += outOfBoundsPenalty
	}

	pts := m.Line.Points()
	if !blocked.IsAvailable(pts[0]) || !blocked.IsAvailable(pts[1]) {
		cost += blockedPenalty
	}

	if _, forbidden := forbiddenLines[m.Line]; forbidden {
		cost += forbiddenLinePenalty
	}

	if _, forbidden := forbiddenPoints[m.Dest]; forbidden {
		cost += forbiddenPointPenalty
	}

	if _, seen := visited[m.Dest]; seen {
		cost += revisitPenalty
	}

	return cost
}

// nextMoves restricts a non-root node to continuing straight or turning 90
// degrees — a 180-degree reversal is never a candidate. The root node (no
// parent direction) may move in any of the four directions.
func nextMoves(pos grid.Pos, hasParentDir bool, parentDir grid.Direction) []grid.Movement {
	if !hasParentDir {
		return pos.AllMoves()
	}
	dirs := [3]grid.Direction{parentDir, parentDir.RotateCW(), parentDir.RotateCCW()}
	moves := make([]grid.Movement, 0, 3)
	for _, d := range dirs {
		moves = append(moves, pos.Go(d))
	}
	return moves
}

// search runs the A* pass described above, returning the first path that
// reaches any point in destinations.
func search(
	conn cpu.Connection,
	from grid.Pos,
	destinations map[grid.Pos]struct{},
	forbiddenLines map[grid.Line]struct{},
	forbiddenPoints map[grid.Pos]struct{},
	blocked *grid.BlockedPoints,
	limits grid.Limits,
) (Path, error) {
	arena := []searchNode{{
		parent: -1,
		pos:    from,
		g:      0,
		h:      heuristic(from, destinations),
	}}
	visited := map[grid.Pos]struct{}{from: {}}

	fr := newFrontier()
	fr.push(arena[0].fullCost(), 0)

	for {
		id, ok := fr.popMin()
		if !ok {
			return Path{}, noPathFound(conn)
		}
		node := arena[id]

		if _, done := destinations[node.pos]; done {
			return reconstruct(arena, id), nil
		}

		hasParentDir := node.parent != -1
		for _, m := range nextMoves(node.pos, hasParentDir, node.parentDir) {
			cost := moveCost(m, limits, blocked, forbiddenLines, forbiddenPoints, visited)
			newNode := searchNode{
				parent:    id,
				parentDir: m.Dir,
				pos:       m.Dest,
				g:         node.g + cost,
				h:         heuristic(m.Dest, destinations),
			}
			visited[m.Dest] = struct{}{}
			arena = append(arena, newNode)
			fr.push(newNode.fullCost(), len(arena)-1)
		}
	}
}

// reconstruct walks the parent chain from id back to the root, collecting
// directions, then reverses them into the Path's forward-ordered movement
// list.
func reconstruct(arena []searchNode, id int) Path {
	var dirs []grid.Direction
	for cur := id; arena[cur].parent != -1; cur = arena[cur].parent {
		dirs = append(dirs, arena[cur].parentDir)
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	root := id
	for arena[root].parent != -1 {
		root = arena[root].parent
	}
	return Path{StartingPoint: arena[root].pos, Movements: dirs}
}
