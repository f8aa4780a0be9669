package generator

// wall is an interior wall between cell a and its right or bottom
// neighbour b, both as row-major indices.
type wall struct {
	a, b int
}

// kruskal carves a random spanning tree by opening walls in shuffled order
// whenever they join two different regions, and returns the number of
// walls opened (W·H−1).
//
//  1. Mark every cell visited: each one starts as its own region.
//  2. List every interior wall (right, then bottom, row-major) and shuffle
//     the list with Fisher–Yates.
//  3. For each wall, if find(a) != find(b), union the regions and carve.
//     Stop after W·H−1 walls.
//
// Regions are a disjoint set with path compression and union by rank.
func (g *Generator) kruskal() int {
	m := g.maze
	total := m.Width * m.Height
	for _, row := range m.Cells {
		for _, c := range row {
			c.Visited = true
		}
	}

	walls := make([]wall, 0, 2*total)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := y*m.Width + x
			if x+1 < m.Width {
				walls = append(walls, wall{a: i, b: i + 1})
			}
			if y+1 < m.Height {
				walls = append(walls, wall{a: i, b: i + m.Width})
			}
		}
	}
	for i := len(walls) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		walls[i], walls[j] = walls[j], walls[i]
	}

	parent := make([]int, total)
	rank := make([]int, total)
	for i := range parent {
		parent[i] = i
	}
	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	carved := 0
	for _, w := range walls {
		if carved == total-1 {
			break
		}
		ra, rb := find(w.a), find(w.b)
		if ra == rb {
			continue
		}
		// Attach the lower-rank root under the higher one.
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}

		pa, pb := m.Coordinate(w.a), m.Coordinate(w.b)
		g.carve(m.At(pa), m.At(pb))
		carved++
	}

	return carved
}
