// Package cave simulates grains of sand falling into a cave of rock, one grain
// at a time, on a sparse grid that grows as it is explored.
//
// What:
//
//   - Cave stores only the cells that were written or queried; every other
//     cell is Air inside the tracked bounds and Void outside them.
//   - AddRockPath rasterizes a waypoint path into Rock and widens the bounds.
//   - AddFloor lays an endless Rock floor two rows below the lowest rock.
//   - DropGrain releases one grain at the source and lets it fall: straight
//     down, else down-left, else down-right, until it rests or is lost.
//   - Fill drops grains until one fails and reports how many settled.
//
// Why:
//
//   - Without a floor the horizontal extent is known, but with one it is
//     unbounded, so a dense array cannot be sized up front.
//
// Termination:
//
//   - No floor: eventually a grain slides past the outermost rock into the
//     Void; that drop and every later one returns false.
//   - Floor: every grain rests; the pile grows until the source itself holds
//     Sand and the next drop returns false.
//
// Complexity:
//
//   - AddRockPath: O(L) for L rasterized cells.
//   - ContentAt:   O(1) amortized.
//   - DropGrain:   O(H) for H = Bounds().MaxY - source row.
//   - Fill:        O(N·H) for N settled grains; O(N) extra memory.
//
// Errors:
//
//   - ErrNegativeRow: a rock waypoint above row 0.
//   - ErrFloorExists: AddFloor called twice.
//   - ErrSealed:      geometry changed after the first drop.
//   - segment.ErrDiagonal, segment.ErrEmptyPath: malformed rock paths.
package cave
