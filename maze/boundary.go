package maze

// BoundaryPositions lists every perimeter wall in scan order:
//
//  1. top row Top walls, x = 0..W-1
//  2. bottom row Bottom walls, x = 0..W-1
//  3. left column Left walls, y = 1..H-2
//  4. right column Right walls, y = 1..H-2
//
// Corners appear only through their Top/Bottom walls. For a one-row maze the
// same row contributes both its Top and its Bottom walls.
// Complexity: O(W+H).
func (m *Maze) BoundaryPositions() []Exit {
	out := make([]Exit, 0, 2*m.Width+2*max(m.Height-2, 0))
	for x := 0; x < m.Width; x++ {
		out = append(out, Exit{Point: Point{X: x, Y: 0}, Side: Top})
	}
	for x := 0; x < m.Width; x++ {
		out = append(out, Exit{Point: Point{X: x, Y: m.Height - 1}, Side: Bottom})
	}
	for y := 1; y < m.Height-1; y++ {
		out = append(out, Exit{Point: Point{X: 0, Y: y}, Side: Left})
	}
	for y := 1; y < m.Height-1; y++ {
		out = append(out, Exit{Point: Point{X: m.Width - 1, Y: y}, Side: Right})
	}

	return out
}

// Exits returns the open boundary positions, in BoundaryPositions order.
func (m *Maze) Exits() []Exit {
	var out []Exit
	for _, e := range m.BoundaryPositions() {
		if !m.Cells[e.Y][e.X].Walls.Has(e.Side) {
			out = append(out, e)
		}
	}

	return out
}

// CountExits returns the number of open boundary positions.
func (m *Maze) CountExits() int {
	n := 0
	for _, e := range m.BoundaryPositions() {
		if !m.Cells[e.Y][e.X].Walls.Has(e.Side) {
			n++
		}
	}

	return n
}

// CloseBoundary puts back every outer wall: Top on the first row, Bottom on
// the last row, and Left/Right on every cell of the first/last column,
// corners included.
func (m *Maze) CloseBoundary() {
	for x := 0; x < m.Width; x++ {
		m.Cells[0][x].Walls.Top = true
		m.Cells[m.Height-1][x].Walls.Bottom = true
	}
	for y := 0; y < m.Height; y++ {
		m.Cells[y][0].Walls.Left = true
		m.Cells[y][m.Width-1].Walls.Right = true
	}
}
