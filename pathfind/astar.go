package pathfind

import (
	"container/heap"

	"github.com/udisondev/chunkpath/geo"
)

// AStar is the default grid search strategy: weighted A* with a binary
// heap open list and a tile-keyed visited map.
//
// Tie-break for equal f-scores is lower h first, then insertion order.
// The rule is deterministic: identical inputs always produce the
// identical path.
type AStar struct{}

func (AStar) Find(chunk *geo.Chunk, start, end geo.Tile, cfg Config) []geo.Tile {
	if !chunk.Walkable(start) || !chunk.Walkable(end) {
		return nil
	}
	if start == end {
		return []geo.Tile{start}
	}

	s := &gridNode{pos: start}
	s.h = cfg.estimate(float64(end.X-start.X), float64(end.Y-start.Y))
	s.f = s.h

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, s)

	visited := map[geo.Tile]*gridNode{start: s}
	seq := 1

	for open.Len() > 0 {
		current := heap.Pop(open).(*gridNode)
		if current.pos == end {
			return rebuild(current)
		}
		current.closed = true

		for _, d := range directions(cfg.AllowDiagonal) {
			next := geo.Tile{X: current.pos.X + d.dx, Y: current.pos.Y + d.dy}
			if !stepAllowed(chunk, current.pos, d) {
				continue
			}

			g := current.g + d.cost
			node, seen := visited[next]
			if seen {
				if node.closed || g >= node.g {
					continue
				}
				node.g = g
				node.f = g + node.h
				node.parent = current
				heap.Fix(open, node.index)
				continue
			}

			node = &gridNode{pos: next, parent: current, g: g, seq: seq}
			seq++
			node.h = cfg.estimate(float64(end.X-next.X), float64(end.Y-next.Y))
			node.f = g + node.h
			visited[next] = node
			heap.Push(open, node)
		}
	}

	return nil // open set exhausted, target unreachable
}

type direction struct {
	dx, dy int
	cost   float64
}

var cardinal = [4]direction{
	{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
}

var all8 = [8]direction{
	{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	{1, -1, Sqrt2}, {1, 1, Sqrt2}, {-1, 1, Sqrt2}, {-1, -1, Sqrt2},
}

func directions(diagonal bool) []direction {
	if diagonal {
		return all8[:]
	}
	return cardinal[:]
}

// stepAllowed checks that the destination tile is walkable and, for a
// diagonal step, that at least one of the two flanking orthogonal tiles
// is open (no squeezing between two blocked corners).
func stepAllowed(chunk *geo.Chunk, from geo.Tile, d direction) bool {
	to := geo.Tile{X: from.X + d.dx, Y: from.Y + d.dy}
	if !chunk.Walkable(to) {
		return false
	}
	if d.dx != 0 && d.dy != 0 {
		sideA := chunk.Walkable(geo.Tile{X: from.X + d.dx, Y: from.Y})
		sideB := chunk.Walkable(geo.Tile{X: from.X, Y: from.Y + d.dy})
		if !sideA && !sideB {
			return false
		}
	}
	return true
}

// gridNode is one open/closed-list entry.
type gridNode struct {
	pos    geo.Tile
	parent *gridNode
	g, h   float64
	f      float64
	index  int
	seq    int
	closed bool
}

func rebuild(goal *gridNode) []geo.Tile {
	path := make([]geo.Tile, 0, 32)
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeHeap implements container/heap: min by f, then h, then insertion
// order.
type nodeHeap []*gridNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].h != h[j].h {
		return h[i].h < h[j].h
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*gridNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // GC
	node.index = -1
	*h = old[:n-1]
	return node
}
