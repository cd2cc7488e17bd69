package pathfind

import (
	"container/heap"

	"github.com/udisondev/chunkpath/geo"
)

// JPS is jump point search: same contract as AStar, identical total path
// cost, fewer expanded nodes. Jump points are expanded back to unit
// steps before returning, so consumers may always assume adjacent path
// tiles are unit neighbors.
//
// Jump point pruning needs diagonal movement to skip over straight rows;
// with diagonals disabled the strategy degenerates to plain A*, which is
// already optimal on 4-connected grids.
type JPS struct{}

func (JPS) Find(chunk *geo.Chunk, start, end geo.Tile, cfg Config) []geo.Tile {
	if !cfg.AllowDiagonal {
		return AStar{}.Find(chunk, start, end, cfg)
	}
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
			return expandJumps(rebuild(current))
		}
		current.closed = true

		for _, d := range jpsNeighbors(chunk, current) {
			jp, ok := jump(chunk, current.pos, d.dx, d.dy, end)
			if !ok {
				continue
			}

			g := current.g + jumpCost(current.pos, jp)
			node, seen := visited[jp]
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

			node = &gridNode{pos: jp, parent: current, g: g, seq: seq}
			seq++
			node.h = cfg.estimate(float64(end.X-jp.X), float64(end.Y-jp.Y))
			node.f = g + node.h
			visited[jp] = node
			heap.Push(open, node)
		}
	}

	return nil
}

// jpsNeighbors prunes expansion directions based on how the node was
// reached. The start node (no parent) expands in all eight directions.
func jpsNeighbors(chunk *geo.Chunk, n *gridNode) []direction {
	if n.parent == nil {
		return all8[:]
	}

	dx := sign(n.pos.X - n.parent.pos.X)
	dy := sign(n.pos.Y - n.parent.pos.Y)
	x, y := n.pos.X, n.pos.Y
	walk := func(tx, ty int) bool { return chunk.Walkable(geo.Tile{X: tx, Y: ty}) }

	dirs := make([]direction, 0, 5)
	if dx != 0 && dy != 0 {
		// Natural neighbors of a diagonal move.
		dirs = append(dirs,
			direction{dx, 0, 1},
			direction{0, dy, 1},
			direction{dx, dy, Sqrt2},
		)
		// Forced neighbors.
		if !walk(x-dx, y) {
			dirs = append(dirs, direction{-dx, dy, Sqrt2})
		}
		if !walk(x, y-dy) {
			dirs = append(dirs, direction{dx, -dy, Sqrt2})
		}
		return dirs
	}

	if dx != 0 {
		dirs = append(dirs, direction{dx, 0, 1})
		if !walk(x, y+1) {
			dirs = append(dirs, direction{dx, 1, Sqrt2})
		}
		if !walk(x, y-1) {
			dirs = append(dirs, direction{dx, -1, Sqrt2})
		}
		return dirs
	}

	dirs = append(dirs, direction{0, dy, 1})
	if !walk(x+1, y) {
		dirs = append(dirs, direction{1, dy, Sqrt2})
	}
	if !walk(x-1, y) {
		dirs = append(dirs, direction{-1, dy, Sqrt2})
	}
	return dirs
}

// jump scans from pos along (dx, dy) until it hits a jump point (goal,
// forced neighbor, or a diagonal whose straight scans find one), a wall,
// or the chunk edge.
func jump(chunk *geo.Chunk, pos geo.Tile, dx, dy int, end geo.Tile) (geo.Tile, bool) {
	for {
		if !stepAllowed(chunk, pos, direction{dx: dx, dy: dy}) {
			return geo.Tile{}, false
		}
		pos = geo.Tile{X: pos.X + dx, Y: pos.Y + dy}
		if pos == end {
			return pos, true
		}

		x, y := pos.X, pos.Y
		walk := func(tx, ty int) bool { return chunk.Walkable(geo.Tile{X: tx, Y: ty}) }

		if dx != 0 && dy != 0 {
			if (walk(x-dx, y+dy) && !walk(x-dx, y)) ||
				(walk(x+dx, y-dy) && !walk(x, y-dy)) {
				return pos, true
			}
			if _, ok := jump(chunk, pos, dx, 0, end); ok {
				return pos, true
			}
			if _, ok := jump(chunk, pos, 0, dy, end); ok {
				return pos, true
			}
			continue
		}

		if dx != 0 {
			if (walk(x+dx, y+1) && !walk(x, y+1)) ||
				(walk(x+dx, y-1) && !walk(x, y-1)) {
				return pos, true
			}
			continue
		}

		if (walk(x+1, y+dy) && !walk(x+1, y)) ||
			(walk(x-1, y+dy) && !walk(x-1, y)) {
			return pos, true
		}
	}
}

// jumpCost is the movement cost between two jump points, which always lie
// on a shared straight or diagonal line.
func jumpCost(from, to geo.Tile) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx == dy {
		return float64(dx) * Sqrt2
	}
	return float64(dx + dy)
}

// expandJumps interpolates unit steps between consecutive jump points.
func expandJumps(jumps []geo.Tile) []geo.Tile {
	if len(jumps) == 0 {
		return jumps
	}
	path := make([]geo.Tile, 0, len(jumps)*4)
	path = append(path, jumps[0])
	for i := 1; i < len(jumps); i++ {
		cur := jumps[i-1]
		dx := sign(jumps[i].X - cur.X)
		dy := sign(jumps[i].Y - cur.Y)
		for cur != jumps[i] {
			cur = geo.Tile{X: cur.X + dx, Y: cur.Y + dy}
			path = append(path, cur)
		}
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
