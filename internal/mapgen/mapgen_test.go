package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/chunkpath/geo"
)

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{Width: 32, Height: 32, WallChance: 0.4, Iterations: 3, Seed: 42}

	a := Generate(opts)
	b := Generate(opts)
	assert.Equal(t, a, b)

	opts.Seed = 43
	c := Generate(opts)
	assert.NotEqual(t, a, c, "a different seed changes the world")
}

func TestGenerateBorderWalls(t *testing.T) {
	opts := Options{Width: 16, Height: 16, WallChance: 0.1, Iterations: 2, Seed: 7, BorderWalls: true}
	world := Generate(opts)

	for x := 0; x < opts.Width; x++ {
		assert.False(t, world[x], "top border tile %d is walkable", x)
		assert.False(t, world[(opts.Height-1)*opts.Width+x], "bottom border tile %d is walkable", x)
	}
	for y := 0; y < opts.Height; y++ {
		assert.False(t, world[y*opts.Width], "left border tile %d is walkable", y)
		assert.False(t, world[y*opts.Width+opts.Width-1], "right border tile %d is walkable", y)
	}
}

func TestStoreSlicesWorld(t *testing.T) {
	// 8x8 world, walkable except one wall at global (5, 2).
	world := make([]bool, 8*8)
	for i := range world {
		world[i] = true
	}
	world[2*8+5] = false

	tf := geo.Transform{ChunkWidth: 4, ChunkHeight: 4, TileSize: 1}
	s := NewStore(world, 8, 8, tf)

	c := s.Chunk(geo.ChunkID{X: 1, Y: 0})
	require.NotNil(t, c)
	assert.False(t, c.Walkable(geo.Tile{X: 1, Y: 2}), "the wall lands at local (1,2) of chunk (1,0)")
	assert.True(t, c.Walkable(geo.Tile{X: 0, Y: 0}))

	assert.Nil(t, s.Chunk(geo.ChunkID{X: 9, Y: 9}), "chunks outside the world are missing")
}

func TestStorePadsPartialChunks(t *testing.T) {
	// 6x6 world in 4x4 chunks leaves a 2-tile fringe that must be blocked.
	world := make([]bool, 6*6)
	for i := range world {
		world[i] = true
	}

	tf := geo.Transform{ChunkWidth: 4, ChunkHeight: 4, TileSize: 1}
	s := NewStore(world, 6, 6, tf)

	c := s.Chunk(geo.ChunkID{X: 1, Y: 1})
	require.NotNil(t, c)
	assert.True(t, c.Walkable(geo.Tile{X: 1, Y: 1}), "global (5,5) is inside the world")
	assert.False(t, c.Walkable(geo.Tile{X: 2, Y: 2}), "global (6,6) is beyond the world edge")
}
