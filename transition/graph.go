package transition

import (
	"sort"

	"github.com/udisondev/chunkpath/geo"
)

// Graph is the full transition-point set plus weighted edges between
// points that share a chunk. Edges are symmetric: an edge A->B with
// weight w always has a matching B->A with the same weight.
//
// The graph is rebuilt wholesale by Builder; it is never mutated
// incrementally after a build, so readers need no locking as long as
// they do not overlap a rebuild (caller-side serialization contract).
type Graph struct {
	points  map[string]*Point
	byChunk map[geo.ChunkID][]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		points:  make(map[string]*Point),
		byChunk: make(map[geo.ChunkID][]string),
	}
}

// Add inserts an edgeless point for the chunk pair and border index,
// returning the existing point when the id is already present.
func (g *Graph) Add(a, b geo.ChunkID, border int) *Point {
	id := PointID(a, b, border)
	if p, ok := g.points[id]; ok {
		return p
	}
	p := NewPoint(a, b, border)
	g.points[id] = p
	g.byChunk[p.Chunks[0]] = append(g.byChunk[p.Chunks[0]], id)
	g.byChunk[p.Chunks[1]] = append(g.byChunk[p.Chunks[1]], id)
	return p
}

// Connect records an undirected edge. A repeated connect keeps the
// lighter weight (two points sharing both chunks can be linked through
// either one).
func (g *Graph) Connect(idA, idB string, weight float64) {
	a, okA := g.points[idA]
	b, okB := g.points[idB]
	if !okA || !okB || idA == idB {
		return
	}
	if w, ok := a.Edges[idB]; ok && w <= weight {
		return
	}
	a.Edges[idB] = weight
	b.Edges[idA] = weight
}

// Point returns the point with the given id, or nil.
func (g *Graph) Point(id string) *Point {
	return g.points[id]
}

// Len returns the number of points.
func (g *Graph) Len() int { return len(g.points) }

// Neighbors returns the ids connected to the given point, ordered by id.
// Nil for an unknown point.
func (g *Graph) Neighbors(id string) []string {
	p, ok := g.points[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(p.Edges))
	for nid := range p.Edges {
		out = append(out, nid)
	}
	sort.Strings(out)
	return out
}

// Points returns all points ordered by id.
func (g *Graph) Points() []*Point {
	out := make([]*Point, 0, len(g.points))
	for _, p := range g.points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// InChunk returns the points touching the given chunk, ordered by id.
func (g *Graph) InChunk(id geo.ChunkID) []*Point {
	ids := g.byChunk[id]
	out := make([]*Point, 0, len(ids))
	for _, pid := range ids {
		out = append(out, g.points[pid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Chunks returns every chunk touched by at least one point, in sorted
// order.
func (g *Graph) Chunks() []geo.ChunkID {
	out := make([]geo.ChunkID, 0, len(g.byChunk))
	for id := range g.byChunk {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Stats summarizes graph connectivity for inspection tooling.
type Stats struct {
	Points    int
	Edges     int // undirected edge count
	Isolated  int // points without any edge
	MaxDegree int
}

// Stats computes connection statistics over the graph.
func (g *Graph) Stats() Stats {
	s := Stats{Points: len(g.points)}
	degreeSum := 0
	for _, p := range g.points {
		d := len(p.Edges)
		degreeSum += d
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.Edges = degreeSum / 2
	return s
}
