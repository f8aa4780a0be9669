// Package solver defines options, results and sentinel errors for maze
// path finding.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors for solver execution.
var (
	// ErrNilMaze is returned when New is given a nil maze.
	ErrNilMaze = errors.New("solver: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrUnreachable is returned by Result.PathTo for cells the search
	// never reached.
	ErrUnreachable = errors.New("solver: cell not reached")

	// ErrNoExit is returned by NearestExit when the maze has no open
	// boundary position reachable from the start.
	ErrNoExit = errors.New("solver: no reachable exit")

	// ErrOutOfBounds is maze.ErrOutOfBounds, so errors.Is works with either.
	ErrOutOfBounds = maze.ErrOutOfBounds
)

// Option configures a Solver.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued with its depth.
	OnEnqueue func(p maze.Point, depth int)

	// OnVisit is called when a cell is dequeued. A non-nil error stops the
	// search and is returned wrapped.
	OnVisit func(p maze.Point, depth int) error

	// MaxDepth, if > 0, stops expanding past this depth. 0 means no limit.
	MaxDepth int

	// Logger receives out-of-bounds warnings.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no depth limit
//   - no-op hooks
//   - logrus.StandardLogger()
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Point, int) {},
		OnVisit:   func(maze.Point, int) error { return nil },
		MaxDepth:  0,
		Logger:    logrus.StandardLogger(),
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p maze.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from it stops the search.
func WithOnVisit(fn func(p maze.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: cells deeper than d are never enqueued
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
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

// Result holds the outcome of a traversal:
//   - Start: the cell the search began at.
//   - Order: cells in visit sequence.
//   - Depth: steps from Start to each reached cell.
//   - Parent: predecessor of each reached cell except Start.
type Result struct {
	Start  maze.Point
	Order  []maze.Point
	Depth  map[maze.Point]int
	Parent map[maze.Point]maze.Point
}

// Reached reports whether the search reached p.
func (r *Result) Reached(p maze.Point) bool {
	_, ok := r.Depth[p]
	return ok
}

// PathTo reconstructs the inclusive path from Start to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest maze.Point) ([]maze.Point, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// Depth gives the exact length; fill from the back.
	path := make([]maze.Point, d+1)
	cur := dest
	for i := d; i > 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	path[0] = cur

	return path, nil
}
