package segment

import (
	"errors"
	"strconv"
)

// Sentinel errors for segment rasterization.
var (
	// ErrDiagonal indicates two endpoints that share neither column nor row.
	ErrDiagonal = errors.New("segment: endpoints are not axis-aligned")
	// ErrEmptyPath indicates a path without any waypoint.
	ErrEmptyPath = errors.New("segment: path has no waypoints")
)

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String formats the point as "x,y", the same form rock paths are written in.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
