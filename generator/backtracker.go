package generator

import "github.com/katalvlaran/labyrinth/maze"

// backtrack runs randomized iterative DFS from opts.Start and returns the
// number of walls opened (W·H−1).
//
// The stack is a slice; the top is its last element. A cell stays on the
// stack until it has no unvisited neighbour left, so backtracking is a pop.
func (g *Generator) backtrack() int {
	start := g.maze.At(g.opts.Start)
	start.Visited = true
	stack := []*maze.Cell{start}
	carved := 0

	for len(stack) > 0 {
		current := stack[len(stack)-1] // peek
		candidates := g.unvisitedNeighbors(current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := pick(g.rng, candidates)
		g.carve(current, next)
		stack = append(stack, next)
		carved++
	}

	return carved
}

// unvisitedNeighbors returns the in-grid, unvisited neighbours of c in the
// order top, bottom, left, right. The slice is reused between calls.
func (g *Generator) unvisitedNeighbors(c *maze.Cell) []*maze.Cell {
	g.cells = g.cells[:0]
	p := maze.Point{X: c.X, Y: c.Y}
	for _, s := range maze.Sides {
		if n := g.maze.At(p.Step(s)); n != nil && !n.Visited {
			g.cells = append(g.cells, n)
		}
	}

	return g.cells
}
