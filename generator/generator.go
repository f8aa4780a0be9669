// Package generator implements maze carving over a maze.Maze.
//
// Key features:
//   - New(width, height, opts...): validate once, allocate a fully walled grid
//   - Generate(): carve a perfect maze with the configured Algorithm
//   - Injected randomness (WithRand / WithSeed) for reproducible output
//   - OnCarve hook for visualisation or statistics
package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/maze"
)

// Generator carves one maze grid. Not safe for concurrent use.
type Generator struct {
	maze      *maze.Maze
	opts      Options
	rng       Source
	generated bool

	// scratch buffers reused across steps
	cells []*maze.Cell
	sides []maze.Side
}

// New validates dimensions and options and allocates a fully walled grid.
// Returns maze.ErrInvalidDimensions, ErrUnknownAlgorithm or
// maze.ErrOutOfBounds (start cell) on invalid input.
func New(width, height int, opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	if o.Algorithm, err = ParseAlgorithm(string(o.Algorithm)); err != nil {
		return nil, err
	}
	if !m.Contains(o.Start) {
		return nil, fmt.Errorf("%w: start %v", maze.ErrOutOfBounds, o.Start)
	}

	rng := o.Rand
	if rng == nil {
		rng = NewRand(o.Seed)
	}

	return &Generator{
		maze:  m,
		opts:  o,
		rng:   rng,
		cells: make([]*maze.Cell, 0, 4),
		sides: make([]maze.Side, 0, 4),
	}, nil
}

// Generate is a shorthand for New followed by (*Generator).Generate.
func Generate(width, height int, opts ...Option) (*maze.Maze, error) {
	g, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// Generate carves a perfect maze and returns it. The returned maze is the
// generator's own grid: a second call resets and re-carves the same cells.
func (g *Generator) Generate() *maze.Maze {
	if g.generated {
		g.maze.Reset()
	}
	g.generated = true

	var carved int
	switch g.opts.Algorithm {
	case Wilson:
		carved = g.wilson()
	case Kruskal:
		carved = g.kruskal()
	default:
		carved = g.backtrack()
	}

	g.opts.Logger.WithFields(logrus.Fields{
		"algorithm": g.opts.Algorithm,
		"width":     g.maze.Width,
		"height":    g.maze.Height,
		"carved":    carved,
	}).Debug("maze generated")

	return g.maze
}

// Maze returns the grid owned by the generator.
func (g *Generator) Maze() *maze.Maze {
	return g.maze
}

// carve opens the wall between two adjacent cells, marks the destination
// visited and notifies the hook.
func (g *Generator) carve(from, to *maze.Cell) {
	g.maze.RemoveWall(from, to)
	to.Visited = true
	g.opts.OnCarve(maze.Point{X: from.X, Y: from.Y}, maze.Point{X: to.X, Y: to.Y})
}
