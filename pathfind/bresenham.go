package pathfind

import "github.com/udisondev/chunkpath/geo"

// Line steps through grid tiles along a Bresenham line from start to
// end, start tile included.
type Line struct {
	current, target geo.Tile
	deltaX, deltaY  int
	stepX, stepY    int
	errorAcc        int
	xDominant       bool
	started         bool
}

// NewLine creates a tile line iterator.
func NewLine(start, end geo.Tile) *Line {
	l := &Line{current: start, target: end}

	l.deltaX = abs(end.X - start.X)
	l.deltaY = abs(end.Y - start.Y)

	if start.X < end.X {
		l.stepX = 1
	} else {
		l.stepX = -1
	}
	if start.Y < end.Y {
		l.stepY = 1
	} else {
		l.stepY = -1
	}

	l.xDominant = l.deltaX >= l.deltaY
	if l.xDominant {
		l.errorAcc = l.deltaX / 2
	} else {
		l.errorAcc = l.deltaY / 2
	}
	return l
}

// Next advances the iterator. Returns false after the target is reached.
func (l *Line) Next() bool {
	if !l.started {
		l.started = true
		return true // start tile first
	}
	if l.current == l.target {
		return false
	}

	if l.xDominant {
		l.current.X += l.stepX
		l.errorAcc += l.deltaY
		if l.errorAcc >= l.deltaX {
			l.current.Y += l.stepY
			l.errorAcc -= l.deltaX
		}
	} else {
		l.current.Y += l.stepY
		l.errorAcc += l.deltaX
		if l.errorAcc >= l.deltaY {
			l.current.X += l.stepX
			l.errorAcc -= l.deltaY
		}
	}
	return true
}

// Tile returns the current tile.
func (l *Line) Tile() geo.Tile { return l.current }

// LineWalkable reports whether every tile on the line between two local
// tiles is walkable, applying the same corner rule as grid search for
// diagonal transitions.
func LineWalkable(chunk *geo.Chunk, start, end geo.Tile) bool {
	it := NewLine(start, end)
	prev := start
	first := true
	for it.Next() {
		cur := it.Tile()
		if !chunk.Walkable(cur) {
			return false
		}
		if !first {
			dx := cur.X - prev.X
			dy := cur.Y - prev.Y
			if dx != 0 && dy != 0 {
				sideA := chunk.Walkable(geo.Tile{X: prev.X + dx, Y: prev.Y})
				sideB := chunk.Walkable(geo.Tile{X: prev.X, Y: prev.Y + dy})
				if !sideA && !sideB {
					return false
				}
			}
		}
		prev = cur
		first = false
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
