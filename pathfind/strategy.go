package pathfind

import (
	"fmt"
	"sync"

	"github.com/udisondev/chunkpath/geo"
)

// Strategy is a single-chunk grid search algorithm. Find returns the
// ordered tile sequence from start to end inclusive, or nil when start or
// end is blocked, out of bounds, or unreachable. Unreachability is a
// normal outcome, never an error.
type Strategy interface {
	Find(chunk *geo.Chunk, start, end geo.Tile, cfg Config) []geo.Tile
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(chunk *geo.Chunk, start, end geo.Tile, cfg Config) []geo.Tile

func (f StrategyFunc) Find(chunk *geo.Chunk, start, end geo.Tile, cfg Config) []geo.Tile {
	return f(chunk, start, end, cfg)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Strategy{
		"astar": AStar{},
		"jps":   JPS{},
	}
)

// Register adds a named strategy. Built-in names may be overridden.
func Register(name string, s Strategy) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = s
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown search algorithm %q", name)
	}
	return s, nil
}

// Cost returns the total movement cost of a path: 1 per orthogonal step,
// Sqrt2 per diagonal step.
func Cost(path []geo.Tile) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		lo, hi := dx, dy
		if lo > hi {
			lo, hi = hi, lo
		}
		total += float64(hi-lo) + float64(lo)*Sqrt2
	}
	return total
}
