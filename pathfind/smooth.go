package pathfind

import "github.com/udisondev/chunkpath/geo"

// Smooth removes unnecessary intermediate waypoints from a local path.
// A waypoint is dropped when its predecessor has line of sight to its
// successor. Runs up to 3 passes to progressively simplify.
//
// The result is a waypoint list, not a unit-step sequence; callers that
// need tile-by-tile movement should skip smoothing.
func Smooth(chunk *geo.Chunk, path []geo.Tile) []geo.Tile {
	for range 3 {
		if len(path) <= 2 {
			return path
		}

		changed := false
		smoothed := make([]geo.Tile, 0, len(path))
		smoothed = append(smoothed, path[0])

		for i := 1; i < len(path)-1; i++ {
			prev := smoothed[len(smoothed)-1]
			next := path[i+1]

			if LineWalkable(chunk, prev, next) {
				changed = true
				continue
			}
			smoothed = append(smoothed, path[i])
		}
		smoothed = append(smoothed, path[len(path)-1])
		path = smoothed

		if !changed {
			break
		}
	}
	return path
}
