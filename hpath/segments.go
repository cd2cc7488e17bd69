package hpath

import (
	"fmt"

	"github.com/udisondev/chunkpath/geo"
	"github.com/udisondev/chunkpath/transition"
)

// Segment is one waypoint of the final path: the world position a mover
// should arrive at while traversing the given chunk.
type Segment struct {
	Chunk    geo.ChunkID
	Position geo.World
}

// SegmentBuilder materializes an abstract node sequence into ordered
// {chunk, position} segments.
type SegmentBuilder struct {
	graph     *transition.Graph
	transform geo.Transform
}

// NewSegmentBuilder wires a segment builder over the given graph.
func NewSegmentBuilder(g *transition.Graph, t geo.Transform) *SegmentBuilder {
	return &SegmentBuilder{graph: g, transform: t}
}

// Build converts the literal start/end positions plus an ordered
// transition-node sequence (possibly empty) into segments.
//
// Guarantees: the first segment's chunk is the start chunk, the last is
// the end chunk, no two consecutive segments repeat the same chunk and
// position, and segment chunk order follows real chunk adjacency.
//
// An unresolvable node id aborts with an ErrStaleGraph-wrapped error.
func (b *SegmentBuilder) Build(start, end geo.World, nodeIDs []string) ([]Segment, error) {
	startChunk := b.transform.ChunkOfWorld(start)
	endChunk := b.transform.ChunkOfWorld(end)

	// No transition hops: a single segment carrying the literal end.
	if len(nodeIDs) == 0 {
		return []Segment{{Chunk: startChunk, Position: end}}, nil
	}

	points := make([]*transition.Point, len(nodeIDs))
	for i, id := range nodeIDs {
		p := b.graph.Point(id)
		if p == nil {
			return nil, fmt.Errorf("%w: unresolvable transition node %q", ErrStaleGraph, id)
		}
		points[i] = p
	}

	// First-node elision: when the second node also touches the start
	// chunk and the hop between the first two nodes happens inside it,
	// the first node is a redundant waypoint.
	if len(points) >= 2 && points[1].Touches(startChunk) &&
		chunksContain(transition.SharedChunks(points[0], points[1]), startChunk) {
		points = points[1:]
	}

	segments := make([]Segment, 0, len(points)+2)
	prevChunk := startChunk
	var prevPoint *transition.Point

	for _, p := range points {
		conn, err := b.connectingChunk(prevPoint, p, prevChunk, startChunk)
		if err != nil {
			return nil, err
		}

		pos, ok := b.transform.BorderWorld(p.Chunks[0], p.Chunks[1], p.Border, conn)
		if !ok {
			return nil, fmt.Errorf("%w: node %q has no position in chunk %s", ErrStaleGraph, p.ID, conn)
		}

		seg := Segment{Chunk: conn, Position: pos}
		if n := len(segments); n == 0 || segments[n-1] != seg {
			segments = append(segments, seg)
		}
		prevChunk = conn
		prevPoint = p
	}

	// Penultimate elision: a hop landing inside the destination chunk is
	// redundant once the final segment is appended.
	if n := len(segments); n > 0 && segments[n-1].Chunk == endChunk {
		segments = segments[:n-1]
	}

	final := Segment{Chunk: endChunk, Position: end}
	if n := len(segments); n == 0 || segments[n-1] != final {
		segments = append(segments, final)
	}
	return segments, nil
}

// connectingChunk picks the chunk through which the mover travels to
// reach point p: the chunk shared with the previous node (or the start
// chunk for the first hop). When two points share both chunks, the chunk
// the mover is already in wins.
func (b *SegmentBuilder) connectingChunk(prev, p *transition.Point, prevChunk, startChunk geo.ChunkID) (geo.ChunkID, error) {
	if prev == nil {
		if p.Touches(startChunk) {
			return startChunk, nil
		}
		return p.Chunks[0], nil
	}

	shared := transition.SharedChunks(prev, p)
	switch len(shared) {
	case 0:
		return geo.ChunkID{}, fmt.Errorf("%w: nodes %q and %q share no chunk", ErrStaleGraph, prev.ID, p.ID)
	case 1:
		return shared[0], nil
	default:
		if chunksContain(shared, prevChunk) {
			return prevChunk, nil
		}
		return shared[0], nil
	}
}

func chunksContain(chunks []geo.ChunkID, id geo.ChunkID) bool {
	for _, c := range chunks {
		if c == id {
			return true
		}
	}
	return false
}
