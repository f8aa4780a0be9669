package maze

// OpenEdges counts interior shared walls that are open. A wall is counted
// once, from the cell on its left or top side, and only when both mirrored
// flags are open.
// Complexity: O(W×H).
func (m *Maze) OpenEdges() int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.Cells[y][x]
			if x+1 < m.Width && !c.Walls.Right && !m.Cells[y][x+1].Walls.Left {
				n++
			}
			if y+1 < m.Height && !c.Walls.Bottom && !m.Cells[y+1][x].Walls.Top {
				n++
			}
		}
	}

	return n
}

// Asymmetries returns the cells whose Right or Bottom wall disagrees with
// the mirrored wall of the neighbour, in row-major order.
func (m *Maze) Asymmetries() []Point {
	var out []Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.Cells[y][x]
			if x+1 < m.Width && c.Walls.Right != m.Cells[y][x+1].Walls.Left {
				out = append(out, Point{X: x, Y: y})
				continue
			}
			if y+1 < m.Height && c.Walls.Bottom != m.Cells[y+1][x].Walls.Top {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}

	return out
}

// IsSymmetric reports whether every shared wall agrees on both sides.
func (m *Maze) IsSymmetric() bool {
	return len(m.Asymmetries()) == 0
}

// ConnectedComponents partitions the grid into regions reachable through
// open walls. Components are discovered in row-major order of their first
// cell and each lists its cells in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) ConnectedComponents() [][]Point {
	seen := make([]bool, m.Width*m.Height)
	var comps [][]Point

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i0 := m.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []Point{{X: x, Y: y}}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				for _, q := range m.PassableNeighbors(queue[qi]) {
					j := m.index(q.X, q.Y)
					if !seen[j] {
						seen[j] = true
						queue = append(queue, q)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// IsPerfect reports whether m is a spanning tree over its grid: walls are
// symmetric, every cell is reachable from every other, and there are
// exactly W·H−1 open interior walls (so no cycles).
func (m *Maze) IsPerfect() bool {
	if !m.IsSymmetric() {
		return false
	}
	if m.OpenEdges() != m.Width*m.Height-1 {
		return false
	}

	return len(m.ConnectedComponents()) == 1
}
