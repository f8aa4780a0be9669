package generator

import "github.com/katalvlaran/labyrinth/maze"

// wilson carves a uniform spanning tree with loop-erased random walks and
// returns the number of walls opened (W·H−1).
//
//  1. Pick a random root; it is the initial tree.
//  2. While cells remain outside the tree, pick one at random and walk from
//     it, remembering the last side taken out of every cell, until the walk
//     touches the tree.
//  3. Retrace from the walk's start following the remembered sides. Loops
//     were overwritten by later exits, so the retrace is loop-free; open
//     each wall and add each cell to the tree.
func (g *Generator) wilson() int {
	m := g.maze
	total := m.Width * m.Height

	remaining := make([]maze.Point, 0, total)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			remaining = append(remaining, maze.Point{X: x, Y: y})
		}
	}
	heading := make([]maze.Side, total)
	at := func(p maze.Point) int { return p.Y*m.Width + p.X }

	root := g.takeRandom(&remaining)
	m.At(root).Visited = true
	left := total - 1
	carved := 0

	for left > 0 {
		start := g.takeRandom(&remaining)
		for m.At(start).Visited {
			start = g.takeRandom(&remaining)
		}

		for p := start; !m.At(p).Visited; {
			s := pick(g.rng, g.inGridSides(p))
			heading[at(p)] = s
			p = p.Step(s)
		}

		for p := start; !m.At(p).Visited; {
			q := p.Step(heading[at(p)])
			g.carve(m.At(q), m.At(p))
			p = q
			carved++
			left--
		}
	}

	return carved
}

// takeRandom removes and returns a uniformly chosen point (swap-delete).
// Every still-unvisited cell stays in the slice until it is taken, so the
// slice is never empty while cells remain outside the tree.
func (g *Generator) takeRandom(points *[]maze.Point) maze.Point {
	s := *points
	i := g.rng.Intn(len(s))
	p := s[i]
	s[i] = s[len(s)-1]
	*points = s[:len(s)-1]

	return p
}

// inGridSides lists the sides of p that lead to another cell, in the order
// top, bottom, left, right. The slice is reused between calls.
func (g *Generator) inGridSides(p maze.Point) []maze.Side {
	g.sides = g.sides[:0]
	for _, s := range maze.Sides {
		if g.maze.Contains(p.Step(s)) {
			g.sides = append(g.sides, s)
		}
	}

	return g.sides
}
