package cave

import (
	"errors"
	"fmt"
)

// Sentinel errors for cave construction. Drops never fail with an error:
// running out of room is reported through DropGrain's boolean result.
var (
	// ErrNegativeRow indicates a rock waypoint with Y < 0.
	ErrNegativeRow = errors.New("cave: rock above row 0")
	// ErrFloorExists indicates AddFloor was already applied.
	ErrFloorExists = errors.New("cave: floor already added")
	// ErrSealed indicates rock or floor changes after sand started falling.
	ErrSealed = errors.New("cave: geometry is sealed once grains are dropped")
)

// caveErrorf prefixes err with the method name and a formatted detail while
// keeping err reachable through errors.Is.
func caveErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
