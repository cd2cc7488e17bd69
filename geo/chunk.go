package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// ChunkID addresses a fixed-size rectangular sub-grid of the world map
// by its integer grid coordinates.
type ChunkID struct {
	X, Y int
}

// String formats the id as "x,y".
func (c ChunkID) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Less orders chunk ids by X, then Y.
func (c ChunkID) Less(other ChunkID) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

// SortPair returns the two chunk ids in canonical (Less-first) order.
func SortPair(a, b ChunkID) (ChunkID, ChunkID) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// ParseError reports a malformed chunk-id string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse chunk id %q: %s", e.Input, e.Reason)
}

// ParseChunkID parses a "x,y" chunk-id string.
func ParseChunkID(s string) (ChunkID, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return ChunkID{}, &ParseError{Input: s, Reason: "expected \"x,y\""}
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ChunkID{}, &ParseError{Input: s, Reason: "invalid x coordinate"}
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ChunkID{}, &ParseError{Input: s, Reason: "invalid y coordinate"}
	}
	return ChunkID{X: x, Y: y}, nil
}

// Tile is an integer position in grid space. Depending on context it is
// either global (whole-map) or local (chunk-relative); Transform converts
// between the two.
type Tile struct {
	X, Y int
}

// World is a continuous position in world units.
type World struct {
	X, Y float64
}

// Chunk is an immutable walkability snapshot of one map chunk.
// The engine never mutates it; callers supply a fresh snapshot per
// build/query.
type Chunk struct {
	ID     ChunkID
	Width  int
	Height int
	tiles  []bool // row-major, y*Width+x, true = walkable
}

// NewChunk wraps a row-major walkability matrix. The slice is retained,
// not copied; the caller must not mutate it afterwards.
func NewChunk(id ChunkID, width, height int, walkable []bool) *Chunk {
	return &Chunk{ID: id, Width: width, Height: height, tiles: walkable}
}

// InBounds reports whether the local tile lies inside the chunk.
func (c *Chunk) InBounds(t Tile) bool {
	if c == nil {
		return false
	}
	return t.X >= 0 && t.X < c.Width && t.Y >= 0 && t.Y < c.Height
}

// Walkable reports whether the local tile is inside the chunk and passable.
// A nil chunk is fully blocked.
func (c *Chunk) Walkable(t Tile) bool {
	if !c.InBounds(t) {
		return false
	}
	return c.tiles[t.Y*c.Width+t.X]
}

// Provider supplies chunk data for a chunk id. Returning nil means the
// chunk is fully blocked / unreachable.
type Provider func(ChunkID) *Chunk
