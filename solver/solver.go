// Package solver provides breadth-first search over a maze.Maze, returning
// fewest-step paths, depths, parent links and visit order.
package solver

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/maze"
)

// Solver answers path queries on one maze. It never mutates the maze and
// keeps no state between calls.
type Solver struct {
	maze *maze.Maze
	opts Options
}

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     maze.Point
	depth int
}

// walker encapsulates mutable BFS state for one search.
type walker struct {
	maze    *maze.Maze
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	target  *maze.Point
	res     *Result
}

// New wraps m. Returns ErrNilMaze for a nil maze or ErrOptionViolation for
// a bad option.
func New(m *maze.Maze, opts ...Option) (*Solver, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{maze: m, opts: o}, nil
}

// Maze returns the maze being solved.
func (s *Solver) Maze() *maze.Maze {
	return s.maze
}

// ShortestPath returns the fewest-step path from start to end, both
// included. An unreachable end yields (nil, nil). A point outside the grid
// yields (nil, ErrOutOfBounds) and a warning.
func (s *Solver) ShortestPath(start, end maze.Point) ([]maze.Point, error) {
	if !s.maze.Contains(start) || !s.maze.Contains(end) {
		s.opts.Logger.WithFields(logrus.Fields{
			"start": start.String(),
			"end":   end.String(),
		}).Warn("solver: point outside the maze")
		return nil, fmt.Errorf("%w: start %v end %v in %dx%d maze",
			ErrOutOfBounds, start, end, s.maze.Width, s.maze.Height)
	}

	res, err := s.run(start, &end)
	if err != nil {
		return nil, err
	}
	if !res.Reached(end) {
		return nil, nil
	}

	return res.PathTo(end)
}

// BFS traverses every cell reachable from start.
// Returns ErrOutOfBounds for an out-of-grid start, the context error on
// cancellation, or the wrapped OnVisit error.
func (s *Solver) BFS(start maze.Point) (*Result, error) {
	if !s.maze.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}

	return s.run(start, nil)
}

// run performs one search. With a non-nil target it stops once the target
// has been visited.
func (s *Solver) run(start maze.Point, target *maze.Point) (*Result, error) {
	n := s.maze.Width * s.maze.Height
	w := &walker{
		maze:    s.maze,
		opts:    s.opts,
		ctx:     s.opts.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		target:  target,
		res: &Result{
			Start:  start,
			Order:  make([]maze.Point, 0, n),
			Depth:  make(map[maze.Point]int, n),
			Parent: make(map[maze.Point]maze.Point, n),
		},
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks p visited at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker) enqueue(p maze.Point, d int, parent *maze.Point) {
	w.visited[p.Y*w.maze.Width+p.X] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until empty, target visited, error or
// cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if w.target != nil && item.p == *w.target {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.p)
	if err := w.opts.OnVisit(item.p, item.depth); err != nil {
		return fmt.Errorf("solver: OnVisit error at %v: %w", item.p, err)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen passable neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.maze.PassableNeighbors(item.p) {
		if !w.visited[nbr.Y*w.maze.Width+nbr.X] {
			w.enqueue(nbr, nextDepth, &item.p)
		}
	}
}
