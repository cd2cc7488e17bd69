package hpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/chunkpath/geo"
	"github.com/udisondev/chunkpath/pathfind"
	"github.com/udisondev/chunkpath/transition"
)

var testTransform = geo.Transform{ChunkWidth: 4, ChunkHeight: 4, TileSize: 1}

// chainGraph builds a horizontal chain of chunks (0,0)..(n,0) with one
// midpoint transition point per border and unit-weight hops between
// consecutive points.
func chainGraph(t *testing.T, n int) (*transition.Graph, []*transition.Point) {
	t.Helper()
	g := transition.NewGraph()
	points := make([]*transition.Point, 0, n)
	for i := 0; i < n; i++ {
		p := g.Add(geo.ChunkID{X: i, Y: 0}, geo.ChunkID{X: i + 1, Y: 0}, 2)
		points = append(points, p)
	}
	for i := 1; i < len(points); i++ {
		g.Connect(points[i-1].ID, points[i].ID, 4)
	}
	return g, points
}

func TestNearestPointPicksClosest(t *testing.T) {
	g := transition.NewGraph()
	top := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 0)
	bottom := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 3)
	g.Connect(top.ID, bottom.ID, 3)

	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)
	other := geo.ChunkID{X: 1, Y: 0}

	got := s.NearestPoint(geo.ChunkID{X: 0, Y: 0}, geo.World{X: 0.5, Y: 0.5}, other)
	require.NotNil(t, got)
	assert.Equal(t, top.ID, got.ID)

	got = s.NearestPoint(geo.ChunkID{X: 0, Y: 0}, geo.World{X: 0.5, Y: 3.5}, other)
	require.NotNil(t, got)
	assert.Equal(t, bottom.ID, got.ID)
}

func TestNearestPointTiesResolveToLowerID(t *testing.T) {
	g := transition.NewGraph()
	a := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 1)
	b := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 2)
	g.Connect(a.ID, b.ID, 1)

	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)

	// (3.5, 2.0) is equidistant from border indices 1 and 2.
	got := s.NearestPoint(geo.ChunkID{X: 0, Y: 0}, geo.World{X: 3.5, Y: 2.0}, geo.ChunkID{X: 1, Y: 0})
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)
}

func TestNearestPointSkipsEdgelessUnlessOnOtherBorder(t *testing.T) {
	g := transition.NewGraph()
	lone := g.Add(geo.ChunkID{X: 0, Y: 0}, geo.ChunkID{X: 1, Y: 0}, 2)
	require.Empty(t, lone.Edges)

	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)
	from := geo.World{X: 0.5, Y: 0.5}

	got := s.NearestPoint(geo.ChunkID{X: 0, Y: 0}, from, geo.ChunkID{X: 1, Y: 0})
	require.NotNil(t, got, "an edgeless point on the border to the other query chunk is a valid entry")
	assert.Equal(t, lone.ID, got.ID)

	assert.Nil(t, s.NearestPoint(geo.ChunkID{X: 0, Y: 0}, from, geo.ChunkID{X: 0, Y: 1}),
		"an edgeless point off the query border is unusable")
}

func TestNearestPointEmptyChunk(t *testing.T) {
	g := transition.NewGraph()
	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)
	assert.Nil(t, s.NearestPoint(geo.ChunkID{X: 5, Y: 5}, geo.World{}, geo.ChunkID{X: 6, Y: 5}))
}

func TestFindNodePathChain(t *testing.T) {
	g, points := chainGraph(t, 3)
	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)

	ids := s.FindNodePath(points[0].ID, points[2].ID)
	assert.Equal(t, []string{points[0].ID, points[1].ID, points[2].ID}, ids)
}

func TestFindNodePathSameNode(t *testing.T) {
	g, points := chainGraph(t, 2)
	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)

	assert.Equal(t, []string{points[0].ID}, s.FindNodePath(points[0].ID, points[0].ID))
}

func TestFindNodePathMissingNodes(t *testing.T) {
	g, points := chainGraph(t, 2)
	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)

	assert.Nil(t, s.FindNodePath("missing", points[0].ID))
	assert.Nil(t, s.FindNodePath(points[0].ID, "missing"))
}

func TestFindNodePathDisconnected(t *testing.T) {
	g, points := chainGraph(t, 2)
	far := g.Add(geo.ChunkID{X: 9, Y: 9}, geo.ChunkID{X: 10, Y: 9}, 0)

	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)
	assert.Nil(t, s.FindNodePath(points[0].ID, far.ID))
}

// A heavier direct edge must lose to a cheaper multi-hop route.
func TestFindNodePathPrefersCheaperRoute(t *testing.T) {
	g, points := chainGraph(t, 3)
	g.Connect(points[0].ID, points[2].ID, 20)

	for _, h := range []pathfind.Heuristic{pathfind.Euclidean, ""} {
		s := NewSearch(g, testTransform, h, 1)
		ids := s.FindNodePath(points[0].ID, points[2].ID)
		assert.Equal(t, []string{points[0].ID, points[1].ID, points[2].ID}, ids,
			"heuristic %q", h)
	}
}

func TestFindNodePathDeterministic(t *testing.T) {
	g, points := chainGraph(t, 4)
	// Equal-cost parallel route through a second row of points.
	alt := make([]*transition.Point, 0, 3)
	for i := 0; i < 3; i++ {
		alt = append(alt, g.Add(geo.ChunkID{X: i, Y: 0}, geo.ChunkID{X: i, Y: 1}, 2))
	}
	g.Connect(points[0].ID, alt[0].ID, 2)
	g.Connect(alt[0].ID, alt[1].ID, 4)
	g.Connect(alt[1].ID, alt[2].ID, 4)
	g.Connect(alt[2].ID, points[3].ID, 2)

	s := NewSearch(g, testTransform, pathfind.Euclidean, 1)
	first := s.FindNodePath(points[0].ID, points[3].ID)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.FindNodePath(points[0].ID, points[3].ID))
	}
}
