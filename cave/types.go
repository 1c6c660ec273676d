package cave

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/sandfall/segment"
)

// Coord is a cell coordinate: X is the column, Y the row (down is +Y).
type Coord = segment.Point

// Content tags what occupies a cell.
type Content uint8

const (
	// Air is empty and passable. It is the zero value.
	Air Content = iota
	// Rock is placed during setup and never changes.
	Rock
	// Sand is a grain at rest.
	Sand
	// Void is anything outside the bounds. It is computed, never stored.
	Void
)

// String returns the content name.
func (c Content) String() string {
	switch c {
	case Air:
		return "air"
	case Rock:
		return "rock"
	case Sand:
		return "sand"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// passable reports whether a falling grain may enter a cell with content c.
func (c Content) passable() bool {
	return c == Air || c == Void
}

// Cell pairs a coordinate with its stored content.
type Cell struct {
	Coord
	Content Content
}

// Bounds is the region in which unknown cells default to Air.
// Without a floor it spans [MinX, MaxX] × [0, MaxY]; with a floor MinX and
// MaxX are math.MinInt and math.MaxInt and row MaxY is solid rock.
type Bounds struct {
	MinX, MaxX int
	MaxY       int
	Floor      bool
}

// emptyBounds contains no cell; the first rock cell collapses it onto itself.
func emptyBounds() Bounds {
	return Bounds{MinX: math.MaxInt, MaxX: math.MinInt, MaxY: -1}
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Coord) bool {
	if c.Y < 0 || c.Y > b.MaxY {
		return false
	}
	return b.Floor || (c.X >= b.MinX && c.X <= b.MaxX)
}

// Cave is a sparse grid of rock and sand with a fixed grain source.
// A Cave is not safe for concurrent use.
type Cave struct {
	cells  map[Coord]Content
	bounds Bounds
	source Coord
	log    *slog.Logger

	sand   int  // stored Sand cells
	sealed bool // set by the first DropGrain
	spent  bool // a drop has failed; every later drop fails too
}
