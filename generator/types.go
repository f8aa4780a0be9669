// Package generator defines options, algorithms and sentinel errors
// for maze generation.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/maze"
)

// ErrUnknownAlgorithm is returned when an Algorithm value is not recognised.
var ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

// Source is the random source consumed by the generator and the exit
// manager. *rand.Rand satisfies it; tests may script their own.
type Source interface {
	// Intn returns a value in [0,n). n is always > 0.
	Intn(n int) int
}

// Algorithm selects the carving strategy.
type Algorithm string

const (
	// Backtracker is randomized iterative depth-first search.
	Backtracker Algorithm = "backtracker"
	// Wilson is the loop-erased random walk algorithm.
	Wilson Algorithm = "wilson"
	// Kruskal opens shuffled walls between disjoint regions.
	Kruskal Algorithm = "kruskal"
)

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case Backtracker, Wilson, Kruskal:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Option configures a Generator.
type Option func(*Options)

// Options holds generator parameters and hooks.
type Options struct {
	// Rand, if non-nil, is used verbatim and Seed is ignored.
	Rand Source

	// Seed feeds a math/rand stream when Rand is nil. 0 ⇒ defaultSeed.
	Seed int64

	// Algorithm picks the carving strategy. Default Backtracker.
	Algorithm Algorithm

	// Start is the first cell pushed by the backtracker. Default (0,0).
	Start maze.Point

	// OnCarve is called once per opened wall; to is the cell joining the tree.
	OnCarve func(from, to maze.Point)

	// Logger receives a debug summary per Generate call.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with:
//   - no injected Source, seed 0 (deterministic default stream)
//   - Backtracker starting at (0,0)
//   - no-op OnCarve
//   - logrus.StandardLogger()
func DefaultOptions() Options {
	return Options{
		Algorithm: Backtracker,
		Start:     maze.Point{X: 0, Y: 0},
		OnCarve:   func(_, _ maze.Point) {},
		Logger:    logrus.StandardLogger(),
	}
}

// WithRand injects a random source. nil is ignored.
func WithRand(r Source) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed sets the seed used when no Source is injected.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithAlgorithm selects the carving strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithStart sets the backtracker's start cell. Wilson and Kruskal ignore it.
func WithStart(p maze.Point) Option {
	return func(o *Options) {
		o.Start = p
	}
}

// WithOnCarve registers a hook invoked for every opened wall.
func WithOnCarve(fn func(from, to maze.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
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
