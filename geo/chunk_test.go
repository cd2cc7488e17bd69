package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkIDString(t *testing.T) {
	assert.Equal(t, "0,0", ChunkID{}.String())
	assert.Equal(t, "3,-2", ChunkID{X: 3, Y: -2}.String())
}

func TestParseChunkID(t *testing.T) {
	id, err := ParseChunkID("4,7")
	require.NoError(t, err)
	assert.Equal(t, ChunkID{X: 4, Y: 7}, id)

	id, err = ParseChunkID(" -1 , 2 ")
	require.NoError(t, err)
	assert.Equal(t, ChunkID{X: -1, Y: 2}, id)
}

func TestParseChunkIDMalformed(t *testing.T) {
	for _, input := range []string{"", "4", "4,7,9", "a,b", "4,", ",7"} {
		_, err := ParseChunkID(input)
		require.Error(t, err, "input %q", input)

		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "input %q should fail with ParseError", input)
		assert.Equal(t, input, parseErr.Input)
	}
}

func TestSortPair(t *testing.T) {
	a := ChunkID{X: 1, Y: 0}
	b := ChunkID{X: 0, Y: 5}

	lo, hi := SortPair(a, b)
	assert.Equal(t, b, lo)
	assert.Equal(t, a, hi)

	lo, hi = SortPair(b, a)
	assert.Equal(t, b, lo)
	assert.Equal(t, a, hi)
}

func TestChunkWalkable(t *testing.T) {
	c := NewChunk(ChunkID{}, 2, 2, []bool{
		true, false,
		false, true,
	})

	assert.True(t, c.Walkable(Tile{X: 0, Y: 0}))
	assert.False(t, c.Walkable(Tile{X: 1, Y: 0}))
	assert.True(t, c.Walkable(Tile{X: 1, Y: 1}))

	assert.False(t, c.Walkable(Tile{X: -1, Y: 0}), "out of bounds is blocked")
	assert.False(t, c.Walkable(Tile{X: 2, Y: 0}), "out of bounds is blocked")
}

func TestNilChunkIsBlocked(t *testing.T) {
	var c *Chunk
	assert.False(t, c.InBounds(Tile{}))
	assert.False(t, c.Walkable(Tile{}))
}

func TestAdjacent4(t *testing.T) {
	a := ChunkID{X: 2, Y: 2}
	assert.True(t, Adjacent4(a, ChunkID{X: 3, Y: 2}))
	assert.True(t, Adjacent4(a, ChunkID{X: 2, Y: 1}))
	assert.False(t, Adjacent4(a, a), "chunk is not adjacent to itself")
	assert.False(t, Adjacent4(a, ChunkID{X: 3, Y: 3}), "no diagonal chunk adjacency")
	assert.False(t, Adjacent4(a, ChunkID{X: 4, Y: 2}))
}
