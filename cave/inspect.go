package cave

import "sort"

// Bounds returns the current tracked region.
func (cv *Cave) Bounds() Bounds {
	return cv.bounds
}

// Source returns the point grains are released from.
func (cv *Cave) Source() Coord {
	return cv.source
}

// Sealed reports whether a grain has been dropped.
func (cv *Cave) Sealed() bool {
	return cv.sealed
}

// SandCount returns the number of settled grains.
func (cv *Cave) SandCount() int {
	return cv.sand
}

// Count returns the number of stored cells holding content.
// Cells still at their derived default and never queried are not counted.
// Complexity: O(S), S = stored cells.
func (cv *Cave) Count(content Content) int {
	n := 0
	for _, c := range cv.cells {
		if c == content {
			n++
		}
	}

	return n
}

// Cells returns a snapshot of all stored cells in row-major order
// (by Y, then X).
// Complexity: O(S log S).
func (cv *Cave) Cells() []Cell {
	out := make([]Cell, 0, len(cv.cells))
	for c, content := range cv.cells {
		out = append(out, Cell{Coord: c, Content: content})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}
