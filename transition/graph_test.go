package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/chunkpath/geo"
)

func TestPointID(t *testing.T) {
	a := geo.ChunkID{X: 1, Y: 0}
	b := geo.ChunkID{X: 0, Y: 0}

	assert.Equal(t, "0,0|1,0:5", PointID(a, b, 5))
	assert.Equal(t, PointID(a, b, 5), PointID(b, a, 5), "id is stable under argument order")
}

func TestPointTouchesAndOther(t *testing.T) {
	p := NewPoint(geo.ChunkID{X: 1, Y: 0}, geo.ChunkID{X: 0, Y: 0}, 2)

	assert.True(t, p.Touches(geo.ChunkID{X: 0, Y: 0}))
	assert.True(t, p.Touches(geo.ChunkID{X: 1, Y: 0}))
	assert.False(t, p.Touches(geo.ChunkID{X: 2, Y: 0}))

	assert.Equal(t, geo.ChunkID{X: 1, Y: 0}, p.Other(geo.ChunkID{X: 0, Y: 0}))
	assert.Equal(t, geo.ChunkID{X: 0, Y: 0}, p.Other(geo.ChunkID{X: 1, Y: 0}))
}

func TestSharedChunks(t *testing.T) {
	a := NewPoint(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 0)
	b := NewPoint(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 3)
	c := NewPoint(geo.ChunkID{X: 1, Y: 0}, geo.ChunkID{X: 2, Y: 0}, 1)
	d := NewPoint(geo.ChunkID{X: 5, Y: 5}, geo.ChunkID{X: 5, Y: 6}, 1)

	assert.Len(t, SharedChunks(a, b), 2, "same border shares both chunks")
	assert.Equal(t, []geo.ChunkID{{X: 1, Y: 0}}, SharedChunks(a, c))
	assert.Empty(t, SharedChunks(a, d))
}

func TestGraphAddIsIdempotent(t *testing.T) {
	g := NewGraph()
	p1 := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 2)
	p2 := g.Add(geo.ChunkID{X: 1, Y: 0}, geo.ChunkID{X: 0, Y: 0}, 2)

	assert.Same(t, p1, p2)
	assert.Equal(t, 1, g.Len())
	assert.Len(t, g.InChunk(geo.ChunkID{X: 0, Y: 0}), 1)
}

func TestGraphConnectSymmetric(t *testing.T) {
	g := NewGraph()
	a := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 0)
	b := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 0, Y: 1}, 1)

	g.Connect(a.ID, b.ID, 4)
	assert.Equal(t, 4.0, a.Edges[b.ID])
	assert.Equal(t, 4.0, b.Edges[a.ID])
}

func TestGraphConnectKeepsLighterWeight(t *testing.T) {
	g := NewGraph()
	a := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 0)
	b := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 3)

	g.Connect(a.ID, b.ID, 5)
	g.Connect(b.ID, a.ID, 3)
	assert.Equal(t, 3.0, a.Edges[b.ID])
	assert.Equal(t, 3.0, b.Edges[a.ID])

	g.Connect(a.ID, b.ID, 7)
	assert.Equal(t, 3.0, a.Edges[b.ID], "heavier duplicate is ignored")
}

func TestGraphConnectIgnoresUnknownAndSelf(t *testing.T) {
	g := NewGraph()
	a := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 0)

	g.Connect(a.ID, "nope", 1)
	g.Connect(a.ID, a.ID, 1)
	assert.Empty(t, a.Edges)
}

func TestGraphPointsSorted(t *testing.T) {
	g := NewGraph()
	g.Add(geo.ChunkID{X: 1, Y: 0}, geo.ChunkID{X: 2, Y: 0}, 0)
	g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 3)
	g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 1)

	points := g.Points()
	require.Len(t, points, 3)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].ID, points[i].ID)
	}
}

func TestGraphNeighbors(t *testing.T) {
	g := NewGraph()
	a := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 0)
	b := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 3)
	c := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 0, Y: 1}, 1)
	g.Connect(a.ID, b.ID, 3)
	g.Connect(a.ID, c.ID, 2)

	assert.Equal(t, []string{c.ID, b.ID}, g.Neighbors(a.ID), "ordered by id")
	assert.Equal(t, []string{a.ID}, g.Neighbors(b.ID))
	assert.Nil(t, g.Neighbors("nope"))
}

func TestGraphStats(t *testing.T) {
	g := NewGraph()
	a := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 0)
	b := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 0, Y: 1}, 1)
	g.Add(geo.ChunkID{X: 5, Y: 5}, geo.ChunkID{X: 6, Y: 5}, 2) // isolated

	g.Connect(a.ID, b.ID, 2)

	stats := g.Stats()
	assert.Equal(t, 3, stats.Points)
	assert.Equal(t, 1, stats.Edges)
	assert.Equal(t, 1, stats.Isolated)
	assert.Equal(t, 1, stats.MaxDegree)
}
