package exits

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generator"
)

// ErrNilMaze is returned when NewManager is given a nil maze.
var ErrNilMaze = errors.New("exits: maze is nil")

// Option configures a Manager.
type Option func(*Options)

// Options holds the random source and logger of a Manager.
type Options struct {
	// Rand, if non-nil, is used verbatim and Seed is ignored.
	Rand generator.Source

	// Seed feeds generator.NewRand when Rand is nil.
	Seed int64

	// Logger receives the clamp warning and per-call debug entries.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with seed 0 and logrus.StandardLogger().
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// WithRand injects a random source. nil is ignored.
func WithRand(r generator.Source) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed sets the seed used when no source is injected.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
