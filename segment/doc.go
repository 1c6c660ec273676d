// Package segment rasterizes axis-aligned line segments into the unit cells
// they cover.
//
// What:
//
//   - Point is an integer (X, Y) pair; X is the column, Y the row.
//   - Rasterize expands one segment into every point from start to end,
//     both endpoints included, walking in either direction.
//   - RasterizePath expands a connected waypoint path, emitting each
//     shared waypoint exactly once.
//
// Why:
//
//   - Rock outlines in a cave are described as waypoint paths; the grid
//     needs the individual cells, not the outline.
//
// Complexity:
//
//   - Rasterize:     O(L) time and memory, L = Chebyshev(start, end) + 1.
//   - RasterizePath: O(ΣL) time and memory.
//
// Errors:
//
//   - ErrDiagonal:  the two endpoints differ in both axes.
//   - ErrEmptyPath: a path with no waypoints.
package segment
