package cave

import (
	"io"
	"log/slog"
)

// DefaultSource is where grains enter unless WithSource says otherwise.
var DefaultSource = Coord{X: 500, Y: 0}

// caveConfig collects the values Option functions set before a Cave is built.
type caveConfig struct {
	source Coord
	logger *slog.Logger
}

func defaultConfig() caveConfig {
	return caveConfig{
		source: DefaultSource,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option customizes a Cave at construction.
type Option func(*caveConfig)

// WithSource sets the point every grain is released from.
// Panics if src.Y < 0: no valid cell lies above row 0.
func WithSource(src Coord) Option {
	if src.Y < 0 {
		panic("cave: WithSource above row 0")
	}
	return func(c *caveConfig) {
		c.source = src
	}
}

// WithLogger routes debug records (rock added, floor added, termination)
// to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cave: WithLogger(nil)")
	}
	return func(c *caveConfig) {
		c.logger = l
	}
}
