package transition

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/chunkpath/geo"
	"github.com/udisondev/chunkpath/pathfind"
)

// PlacementMethod selects how points are placed inside a passable border
// segment.
type PlacementMethod string

const (
	// PlaceCenter evenly distributes up to MaxPoints points inside each
	// segment; a single point lands on the segment midpoint.
	PlaceCenter PlacementMethod = "center"
	// PlaceMargin places one point every Margin tiles along the segment
	// and skips segments shorter than Margin.
	PlaceMargin PlacementMethod = "margin"
)

// ParsePlacement validates a placement method name.
func ParsePlacement(s string) (PlacementMethod, error) {
	switch PlacementMethod(s) {
	case PlaceCenter, PlaceMargin:
		return PlacementMethod(s), nil
	}
	return "", fmt.Errorf("unknown transition point method %q", s)
}

// Options holds the placement settings of a Builder.
type Options struct {
	// World size in chunks.
	GridChunksX int
	GridChunksY int

	Method    PlacementMethod
	MaxPoints int // center mode: points per segment
	Margin    int // margin mode: tiles between points
}

// PointSpec is one entry of a caller-supplied declarative transition
// point list.
type PointSpec struct {
	Chunks   [2]geo.ChunkID
	Position int // border index along the shared edge
}

// Builder scans chunk borders for passable segments, places transition
// points and computes intra-chunk edge weights with the local search
// strategy. A full rebuild is O(k^2) local searches per chunk and is
// only ever triggered by an explicit Rebuild call, never on a query.
type Builder struct {
	transform geo.Transform
	provider  geo.Provider
	strategy  pathfind.Strategy
	search    pathfind.Config
	opts      Options

	dirty bool
	graph *Graph
}

// NewBuilder wires a builder. The provider owns chunk data; the builder
// never mutates it.
func NewBuilder(t geo.Transform, provider geo.Provider, strategy pathfind.Strategy, search pathfind.Config, opts Options) *Builder {
	return &Builder{
		transform: t,
		provider:  provider,
		strategy:  strategy,
		search:    search,
		opts:      opts,
		dirty:     true,
	}
}

// Dirty reports whether the graph is out of date with respect to the
// last Invalidate call.
func (b *Builder) Dirty() bool { return b.dirty }

// Invalidate marks the graph stale. The engine does not watch chunk data
// for changes; callers invalidate and rebuild when their world changes.
func (b *Builder) Invalidate() { b.dirty = true }

// Graph returns the last built graph (nil before the first build).
func (b *Builder) Graph() *Graph { return b.graph }

// Rebuild builds the transition graph wholesale. Idempotent: a clean
// builder returns the cached graph without rescanning.
func (b *Builder) Rebuild() *Graph {
	if !b.dirty && b.graph != nil {
		return b.graph
	}

	started := time.Now()
	g := NewGraph()

	for cy := range b.opts.GridChunksY {
		for cx := range b.opts.GridChunksX {
			id := geo.ChunkID{X: cx, Y: cy}
			if cx+1 < b.opts.GridChunksX {
				b.scanBorder(g, id, geo.ChunkID{X: cx + 1, Y: cy})
			}
			if cy+1 < b.opts.GridChunksY {
				b.scanBorder(g, id, geo.ChunkID{X: cx, Y: cy + 1})
			}
		}
	}

	b.buildEdges(g)

	b.graph = g
	b.dirty = false

	stats := g.Stats()
	slog.Info("transition graph rebuilt",
		"points", stats.Points,
		"edges", stats.Edges,
		"isolated", stats.Isolated,
		"took", time.Since(started))
	return g
}

// UsePoints builds the graph from a declarative transition-point list
// instead of a border scan; edges are still computed by local search.
func (b *Builder) UsePoints(specs []PointSpec) (*Graph, error) {
	g := NewGraph()
	for i, spec := range specs {
		if !geo.Adjacent4(spec.Chunks[0], spec.Chunks[1]) {
			return nil, fmt.Errorf("transition point %d: chunks %s and %s are not adjacent",
				i, spec.Chunks[0], spec.Chunks[1])
		}
		g.Add(spec.Chunks[0], spec.Chunks[1], spec.Position)
	}

	b.buildEdges(g)
	b.graph = g
	b.dirty = false
	return g, nil
}

// UseGraph installs a pre-built graph verbatim. The caller is
// responsible for the symmetric-edges invariant.
func (b *Builder) UseGraph(g *Graph) {
	b.graph = g
	b.dirty = false
}

// scanBorder walks the shared edge of a 4-adjacent chunk pair, groups
// passable border indices into maximal contiguous segments and places
// points per the configured method. A border index is passable only when
// the facing tiles in both chunks are walkable.
func (b *Builder) scanBorder(g *Graph, a, bid geo.ChunkID) {
	chunkA := b.provider(a)
	chunkB := b.provider(bid)
	if chunkA == nil || chunkB == nil {
		return // missing chunk data is fully blocked
	}

	length := b.transform.ChunkHeight
	if bid.Y != a.Y {
		length = b.transform.ChunkWidth
	}

	runStart := -1
	for i := 0; i <= length; i++ {
		passable := false
		if i < length {
			la, _ := b.transform.BorderLocal(a, bid, i, a)
			lb, _ := b.transform.BorderLocal(a, bid, i, bid)
			passable = chunkA.Walkable(la) && chunkB.Walkable(lb)
		}

		switch {
		case passable && runStart < 0:
			runStart = i
		case !passable && runStart >= 0:
			for _, idx := range b.placeInSegment(runStart, i-runStart) {
				g.Add(a, bid, idx)
			}
			runStart = -1
		}
	}
}

// placeInSegment returns the border indices chosen inside one maximal
// passable segment [start, start+length).
func (b *Builder) placeInSegment(start, length int) []int {
	switch b.opts.Method {
	case PlaceMargin:
		if b.opts.Margin <= 0 || length < b.opts.Margin {
			return nil
		}
		var out []int
		for off := 0; off < length; off += b.opts.Margin {
			out = append(out, start+off)
		}
		return out

	default: // PlaceCenter
		n := b.opts.MaxPoints
		if n < 1 {
			n = 1
		}
		if n > length {
			n = length
		}
		out := make([]int, 0, n)
		for k := range n {
			out = append(out, start+((2*k+1)*length)/(2*n))
		}
		return out
	}
}

// buildEdges runs the local strategy between every pair of points
// sharing a chunk. A found path adds an undirected edge weighted by the
// path cost; no path means no edge. Points whose position is not
// walkable in both adjacent chunks are excluded entirely (stale-point
// invariant).
func (b *Builder) buildEdges(g *Graph) {
	for _, cid := range g.Chunks() {
		chunk := b.provider(cid)
		if chunk == nil {
			continue
		}

		points := g.InChunk(cid)
		for i := 0; i < len(points); i++ {
			pi := points[i]
			if !b.pointUsable(pi) {
				continue
			}
			li, _ := b.transform.BorderLocal(pi.Chunks[0], pi.Chunks[1], pi.Border, cid)
			for j := i + 1; j < len(points); j++ {
				pj := points[j]
				if !b.pointUsable(pj) {
					continue
				}
				lj, _ := b.transform.BorderLocal(pj.Chunks[0], pj.Chunks[1], pj.Border, cid)

				path := b.strategy.Find(chunk, li, lj, b.search)
				if path == nil {
					continue
				}
				g.Connect(pi.ID, pj.ID, pathfind.Cost(path))
			}
		}
	}
}

// pointUsable verifies the stale-point invariant: the point's position
// must be walkable in both adjacent chunks.
func (b *Builder) pointUsable(p *Point) bool {
	for _, cid := range p.Chunks {
		local, ok := b.transform.BorderLocal(p.Chunks[0], p.Chunks[1], p.Border, cid)
		if !ok || !b.provider(cid).Walkable(local) {
			return false
		}
	}
	return true
}
