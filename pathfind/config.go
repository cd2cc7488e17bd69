package pathfind

import (
	"fmt"
	"math"
)

// Heuristic names a distance estimate used to guide grid search.
type Heuristic string

const (
	Manhattan Heuristic = "manhattan"
	Euclidean Heuristic = "euclidean"
	Diagonal  Heuristic = "diagonal"
	Octile    Heuristic = "octile"
)

// ParseHeuristic validates a heuristic name.
func ParseHeuristic(s string) (Heuristic, error) {
	switch Heuristic(s) {
	case Manhattan, Euclidean, Diagonal, Octile:
		return Heuristic(s), nil
	}
	return "", fmt.Errorf("unknown heuristic %q", s)
}

// Sqrt2 is the cost of one diagonal step.
const Sqrt2 = math.Sqrt2

// Estimate returns the heuristic distance for the given coordinate deltas.
func (h Heuristic) Estimate(dx, dy float64) float64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	switch h {
	case Euclidean:
		return math.Sqrt(dx*dx + dy*dy)
	case Diagonal:
		return math.Max(dx, dy)
	case Octile:
		lo, hi := dx, dy
		if lo > hi {
			lo, hi = hi, lo
		}
		return (hi - lo) + lo*Sqrt2
	default: // Manhattan
		return dx + dy
	}
}

// Config controls a single-chunk grid search.
type Config struct {
	// Heuristic guides the search; Manhattan when empty.
	Heuristic Heuristic
	// Weight scales the heuristic (weighted A*). Values below 1 are
	// treated as 1.
	Weight float64
	// AllowDiagonal enables 8-directional movement. A diagonal move is
	// rejected only when both flanking orthogonal tiles are blocked.
	AllowDiagonal bool
}

func (c Config) weight() float64 {
	if c.Weight < 1 {
		return 1
	}
	return c.Weight
}

func (c Config) estimate(dx, dy float64) float64 {
	h := c.Heuristic
	if h == "" {
		h = Manhattan
	}
	return c.weight() * h.Estimate(dx, dy)
}
