package segment

import "fmt"

// Rasterize returns every unit cell from start to end inclusive, in walking
// order. start and end must share a column or a row; otherwise ErrDiagonal
// is returned and no points are produced.
// Equal endpoints yield a single point.
// Complexity: O(L) time and memory, L = Chebyshev(start, end) + 1.
func Rasterize(start, end Point) ([]Point, error) {
	if start.X != end.X && start.Y != end.Y {
		return nil, fmt.Errorf("Rasterize(%s, %s): %w", start, end, ErrDiagonal)
	}
	dx, dy := step(start.X, end.X), step(start.Y, end.Y)
	out := make([]Point, 0, Chebyshev(start, end)+1)
	for p := start; ; p = p.Add(dx, dy) {
		out = append(out, p)
		if p == end {
			break
		}
	}

	return out, nil
}

// RasterizePath rasterizes each consecutive pair of waypoints and joins the
// results. A waypoint shared by two segments appears once.
// A single waypoint yields just that point.
// Complexity: O(ΣL) time and memory.
func RasterizePath(waypoints []Point) ([]Point, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("RasterizePath: %w", ErrEmptyPath)
	}
	out := []Point{waypoints[0]}
	for i := 1; i < len(waypoints); i++ {
		pts, err := Rasterize(waypoints[i-1], waypoints[i])
		if err != nil {
			return nil, fmt.Errorf("RasterizePath: leg %d: %w", i, err)
		}
		// pts[0] is the previous leg's last point.
		out = append(out, pts[1:]...)
	}

	return out, nil
}

// Chebyshev returns max(|Δx|, |Δy|), the number of unit steps between a and b
// when diagonal moves are allowed.
func Chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// step returns the unit direction from a towards b: -1, 0 or 1.
func step(a, b int) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
