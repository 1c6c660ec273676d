package cave

import (
	"math"

	"github.com/katalvlaran/sandfall/segment"
)

// New returns an empty cave: no rock, no floor, every cell Void.
func New(opts ...Option) *Cave {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cave{
		cells:  make(map[Coord]Content),
		bounds: emptyBounds(),
		source: cfg.source,
		log:    cfg.logger,
	}
}

// AddRockPath turns every cell along the waypoint path into Rock and widens
// the bounds to cover it. Adding the same path twice changes nothing.
// The path is validated in full before anything is written.
//
// Rock must be added before the floor, which sits relative to the lowest rock.
//
// Errors: ErrSealed, ErrFloorExists, ErrNegativeRow, segment.ErrEmptyPath,
// segment.ErrDiagonal.
// Complexity: O(L) for L rasterized cells.
func (cv *Cave) AddRockPath(path []Coord) error {
	if cv.sealed {
		return caveErrorf("AddRockPath", ErrSealed, "")
	}
	if cv.bounds.Floor {
		return caveErrorf("AddRockPath", ErrFloorExists, "rock after floor")
	}
	for _, p := range path {
		if p.Y < 0 {
			return caveErrorf("AddRockPath", ErrNegativeRow, "waypoint %s", p)
		}
	}
	cells, err := segment.RasterizePath(path)
	if err != nil {
		return caveErrorf("AddRockPath", err, "")
	}

	for _, c := range cells {
		// Stored Air is only a memoized default; rock replaces it.
		cv.cells[c] = Rock
		cv.extend(c)
	}
	cv.log.Debug("rock path added",
		"waypoints", len(path), "cells", len(cells),
		"min_x", cv.bounds.MinX, "max_x", cv.bounds.MaxX, "max_y", cv.bounds.MaxY)

	return nil
}

// AddRockPaths adds each path in order and stops at the first failure.
// Paths before the failing one stay applied.
func (cv *Cave) AddRockPaths(paths [][]Coord) error {
	for i, path := range paths {
		if err := cv.AddRockPath(path); err != nil {
			return caveErrorf("AddRockPaths", err, "path %d", i)
		}
	}

	return nil
}

// AddFloor lays an endless rock floor two rows below the lowest rock.
// Afterwards the horizontal extent is unbounded and every cell on row
// Bounds().MaxY reads as Rock.
//
// Errors: ErrFloorExists on a second call, ErrSealed after the first drop.
func (cv *Cave) AddFloor() error {
	if cv.sealed {
		return caveErrorf("AddFloor", ErrSealed, "")
	}
	if cv.bounds.Floor {
		return caveErrorf("AddFloor", ErrFloorExists, "")
	}
	cv.bounds.Floor = true
	cv.bounds.MinX, cv.bounds.MaxX = math.MinInt, math.MaxInt
	cv.bounds.MaxY += 2
	cv.log.Debug("floor added", "floor_y", cv.bounds.MaxY)

	return nil
}

// extend grows the bounds to include c. Bounds never shrink.
func (cv *Cave) extend(c Coord) {
	if c.Y > cv.bounds.MaxY {
		cv.bounds.MaxY = c.Y
	}
	if c.X < cv.bounds.MinX {
		cv.bounds.MinX = c.X
	}
	if c.X > cv.bounds.MaxX {
		cv.bounds.MaxX = c.X
	}
}
