package geo

import "math"

// Transform converts between global tile coordinates, chunk ids,
// chunk-local coordinates and world units. It is pure and stateless;
// all conversions in the engine go through here.
//
// All integer arithmetic uses floor division, so there is no rounding
// ambiguity at chunk boundaries.
type Transform struct {
	ChunkWidth  int
	ChunkHeight int
	TileSize    float64
}

// ChunkOf returns the chunk containing a global tile.
func (t Transform) ChunkOf(g Tile) ChunkID {
	return ChunkID{
		X: floorDiv(g.X, t.ChunkWidth),
		Y: floorDiv(g.Y, t.ChunkHeight),
	}
}

// ToLocal splits a global tile into its chunk id and chunk-local tile.
func (t Transform) ToLocal(g Tile) (ChunkID, Tile) {
	id := t.ChunkOf(g)
	return id, Tile{
		X: g.X - id.X*t.ChunkWidth,
		Y: g.Y - id.Y*t.ChunkHeight,
	}
}

// ToGlobal converts a chunk-local tile back to a global tile.
func (t Transform) ToGlobal(id ChunkID, local Tile) Tile {
	return Tile{
		X: id.X*t.ChunkWidth + local.X,
		Y: id.Y*t.ChunkHeight + local.Y,
	}
}

// TileToWorld returns the world position of a global tile's center.
func (t Transform) TileToWorld(g Tile) World {
	return World{
		X: (float64(g.X) + 0.5) * t.TileSize,
		Y: (float64(g.Y) + 0.5) * t.TileSize,
	}
}

// WorldToTile returns the global tile containing a world position.
func (t Transform) WorldToTile(w World) Tile {
	return Tile{
		X: int(math.Floor(w.X / t.TileSize)),
		Y: int(math.Floor(w.Y / t.TileSize)),
	}
}

// ChunkOfWorld returns the chunk containing a world position.
func (t Transform) ChunkOfWorld(w World) ChunkID {
	return t.ChunkOf(t.WorldToTile(w))
}

// BorderLocal resolves a transition point's chunk-local tile. The point
// sits at border index idx on the shared edge between 4-adjacent chunks
// a and b; its local coordinate differs depending on which of the two is
// the reference chunk. Returns false when a and b are not 4-adjacent or
// ref is neither of them.
func (t Transform) BorderLocal(a, b ChunkID, idx int, ref ChunkID) (Tile, bool) {
	lo, hi := SortPair(a, b)
	switch {
	case hi.X == lo.X+1 && hi.Y == lo.Y:
		// Vertical border, index runs along Y.
		switch ref {
		case lo:
			return Tile{X: t.ChunkWidth - 1, Y: idx}, true
		case hi:
			return Tile{X: 0, Y: idx}, true
		}
	case hi.Y == lo.Y+1 && hi.X == lo.X:
		// Horizontal border, index runs along X.
		switch ref {
		case lo:
			return Tile{X: idx, Y: t.ChunkHeight - 1}, true
		case hi:
			return Tile{X: idx, Y: 0}, true
		}
	}
	return Tile{}, false
}

// BorderGlobal resolves a transition point's global tile as seen from the
// reference chunk.
func (t Transform) BorderGlobal(a, b ChunkID, idx int, ref ChunkID) (Tile, bool) {
	local, ok := t.BorderLocal(a, b, idx, ref)
	if !ok {
		return Tile{}, false
	}
	return t.ToGlobal(ref, local), true
}

// BorderWorld resolves a transition point's world position as seen from
// the reference chunk (the center of its tile in that chunk).
func (t Transform) BorderWorld(a, b ChunkID, idx int, ref ChunkID) (World, bool) {
	g, ok := t.BorderGlobal(a, b, idx, ref)
	if !ok {
		return World{}, false
	}
	return t.TileToWorld(g), true
}

// Adjacent4 reports whether two chunks share an edge (no diagonal chunk
// adjacency).
func Adjacent4(a, b ChunkID) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
