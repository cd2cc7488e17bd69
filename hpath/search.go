package hpath

import (
	"container/heap"
	"sort"

	"github.com/udisondev/chunkpath/geo"
	"github.com/udisondev/chunkpath/pathfind"
	"github.com/udisondev/chunkpath/transition"
)

// Search runs a weighted search over a transition graph: A* when a
// heuristic is configured, plain Dijkstra otherwise.
type Search struct {
	graph     *transition.Graph
	transform geo.Transform
	heuristic pathfind.Heuristic // empty = Dijkstra
	weight    float64
}

// NewSearch wires a search over the given graph.
func NewSearch(g *transition.Graph, t geo.Transform, h pathfind.Heuristic, weight float64) *Search {
	if weight < 1 {
		weight = 1
	}
	return &Search{graph: g, transform: t, heuristic: h, weight: weight}
}

// NearestPoint returns the transition point in the given chunk closest
// to the world position by straight-line distance. Only usable points
// qualify: a point must carry at least one graph edge, or sit directly
// on the border to the other query chunk (a lone border point between
// two chunks has no intra-chunk edge yet is a valid entry and exit).
// Ties resolve to the lower point id. Returns nil when the chunk has no
// usable point.
func (s *Search) NearestPoint(chunk geo.ChunkID, from geo.World, other geo.ChunkID) *transition.Point {
	var best *transition.Point
	bestDist := 0.0

	for _, p := range s.graph.InChunk(chunk) {
		if len(p.Edges) == 0 && !p.Touches(other) {
			continue
		}
		pos, ok := s.transform.BorderWorld(p.Chunks[0], p.Chunks[1], p.Border, chunk)
		if !ok {
			continue
		}
		dx := pos.X - from.X
		dy := pos.Y - from.Y
		dist := dx*dx + dy*dy
		if best == nil || dist < bestDist {
			best = p
			bestDist = dist
		}
	}
	return best
}

// FindNodePath returns the ordered node-id sequence from startID to
// endID, or nil when either node is missing or the graph is disconnected
// between them.
func (s *Search) FindNodePath(startID, endID string) []string {
	startPoint := s.graph.Point(startID)
	endPoint := s.graph.Point(endID)
	if startPoint == nil || endPoint == nil {
		return nil
	}
	if startID == endID {
		return []string{startID}
	}

	goal := s.pointWorld(endPoint)

	start := &graphNode{id: startID}
	start.h = s.estimate(startPoint, goal)
	start.f = start.h

	open := &graphHeap{}
	heap.Init(open)
	heap.Push(open, start)

	visited := map[string]*graphNode{startID: start}
	seq := 1

	for open.Len() > 0 {
		current := heap.Pop(open).(*graphNode)
		if current.id == endID {
			return rebuildIDs(current)
		}
		current.closed = true

		p := s.graph.Point(current.id)
		for _, nid := range sortedEdgeIDs(p) {
			weight := p.Edges[nid]
			g := current.g + weight

			node, seen := visited[nid]
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

			next := s.graph.Point(nid)
			if next == nil {
				continue
			}
			node = &graphNode{id: nid, parent: current, g: g, seq: seq}
			seq++
			node.h = s.estimate(next, goal)
			node.f = g + node.h
			visited[nid] = node
			heap.Push(open, node)
		}
	}

	return nil // disconnected
}

// estimate is the hierarchical heuristic: straight-line style distance
// between the point's world position and the goal, scaled by weight.
// Zero (Dijkstra) when no heuristic is configured.
func (s *Search) estimate(p *transition.Point, goal geo.World) float64 {
	if s.heuristic == "" {
		return 0
	}
	pos := s.pointWorld(p)
	return s.weight * s.heuristic.Estimate(goal.X-pos.X, goal.Y-pos.Y)
}

// pointWorld resolves a point's canonical world position (projected into
// its lower chunk).
func (s *Search) pointWorld(p *transition.Point) geo.World {
	pos, _ := s.transform.BorderWorld(p.Chunks[0], p.Chunks[1], p.Border, p.Chunks[0])
	return pos
}

// sortedEdgeIDs returns a point's neighbor ids in stable order so equal-
// cost searches expand deterministically.
func sortedEdgeIDs(p *transition.Point) []string {
	ids := make([]string, 0, len(p.Edges))
	for id := range p.Edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// graphNode is one open/closed entry of the graph search.
type graphNode struct {
	id     string
	parent *graphNode
	g, h   float64
	f      float64
	index  int
	seq    int
	closed bool
}

func rebuildIDs(goal *graphNode) []string {
	ids := make([]string, 0, 16)
	for n := goal; n != nil; n = n.parent {
		ids = append(ids, n.id)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

// graphHeap orders by f, then h, then insertion order.
type graphHeap []*graphNode

func (h graphHeap) Len() int { return len(h) }

func (h graphHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].h != h[j].h {
		return h[i].h < h[j].h
	}
	return h[i].seq < h[j].seq
}

func (h graphHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *graphHeap) Push(x any) {
	n := x.(*graphNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *graphHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // GC
	node.index = -1
	*h = old[:n-1]
	return node
}
