package transition

import (
	"strconv"

	"github.com/udisondev/chunkpath/geo"
)

// Point is a transition node on the border between two 4-adjacent
// chunks. Border is the index along the shared edge (row index for a
// vertical border, column index for a horizontal one).
type Point struct {
	ID     string
	Chunks [2]geo.ChunkID // canonical order, Chunks[0].Less(Chunks[1])
	Border int
	Edges  map[string]float64 // node id -> weight, symmetric across the graph
}

// PointID derives the deterministic id for a border position: the sorted
// chunk-pair key plus the border index. Identical chunk data always
// yields identical ids across rebuilds.
func PointID(a, b geo.ChunkID, border int) string {
	lo, hi := geo.SortPair(a, b)
	return lo.String() + "|" + hi.String() + ":" + strconv.Itoa(border)
}

// NewPoint creates an edgeless point for the given chunk pair and border
// index.
func NewPoint(a, b geo.ChunkID, border int) *Point {
	lo, hi := geo.SortPair(a, b)
	return &Point{
		ID:     PointID(lo, hi, border),
		Chunks: [2]geo.ChunkID{lo, hi},
		Border: border,
		Edges:  make(map[string]float64),
	}
}

// Touches reports whether the point lies on a border of the given chunk.
func (p *Point) Touches(id geo.ChunkID) bool {
	return p.Chunks[0] == id || p.Chunks[1] == id
}

// Other returns the point's adjacent chunk that is not the given one.
func (p *Point) Other(id geo.ChunkID) geo.ChunkID {
	if p.Chunks[0] == id {
		return p.Chunks[1]
	}
	return p.Chunks[0]
}

// SharedChunks returns the chunks two points have in common (0, 1 or 2;
// 2 when both points sit on the same border).
func SharedChunks(a, b *Point) []geo.ChunkID {
	shared := make([]geo.ChunkID, 0, 2)
	for _, ca := range a.Chunks {
		if b.Touches(ca) {
			shared = append(shared, ca)
		}
	}
	return shared
}
