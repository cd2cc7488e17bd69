// Package mapgen synthesizes tile worlds for the pathbench tool and
// integration tests. It is a stand-in for the external map source the
// engine expects; the engine itself never imports it.
package mapgen

import (
	"math/rand"

	"github.com/udisondev/chunkpath/geo"
)

// Options controls cellular-automata world synthesis.
type Options struct {
	Width, Height int     // world size in tiles
	WallChance    float64 // initial wall probability, 0..1
	Iterations    int     // smoothing passes
	Seed          int64
	BorderWalls   bool // force a solid outer wall
}

// Generate returns a row-major walkability matrix (true = walkable).
// Identical options always produce the identical world.
func Generate(opts Options) []bool {
	rng := rand.New(rand.NewSource(opts.Seed))

	walls := make([]bool, opts.Width*opts.Height)
	for i := range walls {
		walls[i] = rng.Float64() < opts.WallChance
	}

	for range opts.Iterations {
		next := make([]bool, len(walls))
		for y := range opts.Height {
			for x := range opts.Width {
				n := wallNeighbors(walls, opts.Width, opts.Height, x, y)
				switch {
				case n >= 5:
					next[y*opts.Width+x] = true
				case n <= 3:
					next[y*opts.Width+x] = false
				default:
					next[y*opts.Width+x] = walls[y*opts.Width+x]
				}
			}
		}
		walls = next
	}

	if opts.BorderWalls {
		for x := range opts.Width {
			walls[x] = true
			walls[(opts.Height-1)*opts.Width+x] = true
		}
		for y := range opts.Height {
			walls[y*opts.Width] = true
			walls[y*opts.Width+opts.Width-1] = true
		}
	}

	walkable := make([]bool, len(walls))
	for i, w := range walls {
		walkable[i] = !w
	}
	return walkable
}

// wallNeighbors counts walls in the 3x3 neighborhood including the cell
// itself; out-of-bounds counts as wall.
func wallNeighbors(walls []bool, w, h, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				count++
				continue
			}
			if walls[ny*w+nx] {
				count++
			}
		}
	}
	return count
}

// Store slices a world matrix into immutable chunk snapshots and serves
// them through the engine's provider callback.
type Store struct {
	chunks map[geo.ChunkID]*geo.Chunk
}

// NewStore partitions a row-major world of gridW x gridH tiles into
// chunks of the transform's dimensions. Tiles beyond the world edge are
// blocked.
func NewStore(world []bool, gridW, gridH int, t geo.Transform) *Store {
	s := &Store{chunks: make(map[geo.ChunkID]*geo.Chunk)}

	chunksX := (gridW + t.ChunkWidth - 1) / t.ChunkWidth
	chunksY := (gridH + t.ChunkHeight - 1) / t.ChunkHeight

	for cy := range chunksY {
		for cx := range chunksX {
			id := geo.ChunkID{X: cx, Y: cy}
			tiles := make([]bool, t.ChunkWidth*t.ChunkHeight)
			for ly := range t.ChunkHeight {
				for lx := range t.ChunkWidth {
					gx := cx*t.ChunkWidth + lx
					gy := cy*t.ChunkHeight + ly
					if gx < gridW && gy < gridH {
						tiles[ly*t.ChunkWidth+lx] = world[gy*gridW+gx]
					}
				}
			}
			s.chunks[id] = geo.NewChunk(id, t.ChunkWidth, t.ChunkHeight, tiles)
		}
	}
	return s
}

// Chunk implements geo.Provider.
func (s *Store) Chunk(id geo.ChunkID) *geo.Chunk {
	return s.chunks[id]
}
