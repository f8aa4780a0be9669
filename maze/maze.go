// Package maze provides the grid model shared by the generator, exit
// manager, solver and renderer:
//
//   - Fully walled construction (New) and hand-built fixtures (FromWalls)
//   - Wall mutation that keeps both sides of a shared wall consistent
//   - Structural cloning for copy-on-write consumers
//
// Cells are addressed as Cells[y][x].
package maze

import (
	"fmt"
)

// New allocates a height×width grid of cells, each with all four walls
// present and Visited=false.
// Returns ErrInvalidDimensions if width ≤ 0 or height ≤ 0.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := make([][]*Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = &Cell{X: x, Y: y, Walls: Closed()}
		}
	}

	return &Maze{Width: width, Height: height, Cells: cells}, nil
}

// FromWalls builds a maze from explicit wall flags, rows[y][x].
// The input is copied. Returns ErrInvalidDimensions for empty input,
// ErrNonRectangular for ragged rows and ErrAsymmetricWalls when a shared
// wall is present on one side only.
func FromWalls(rows [][]Walls) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	m, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Cells[y][x].Walls = rows[y][x]
		}
	}
	if bad := m.Asymmetries(); len(bad) > 0 {
		return nil, fmt.Errorf("%w: at %v", ErrAsymmetricWalls, bad[0])
	}

	return m, nil
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Contains reports whether p lies within the grid.
func (m *Maze) Contains(p Point) bool {
	return m.InBounds(p.X, p.Y)
}

// At returns the cell at p, or nil if p is outside the grid.
func (m *Maze) At(p Point) *Cell {
	if !m.Contains(p) {
		return nil
	}
	return m.Cells[p.Y][p.X]
}

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Maze) index(x, y int) int {
	return y*m.Width + x
}

// Coordinate converts a row-major index back to a Point.
func (m *Maze) Coordinate(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// RemoveWall opens the wall shared by the grid-adjacent cells a and b,
// clearing the mirrored flag on both. The caller guarantees adjacency;
// non-adjacent cells are left unchanged.
//
//	dx = a.X-b.X, dy = a.Y-b.Y
//	dx == 1  → a.Left,   b.Right
//	dx == -1 → a.Right,  b.Left
//	dy == 1  → a.Top,    b.Bottom
//	dy == -1 → a.Bottom, b.Top
func (m *Maze) RemoveWall(a, b *Cell) {
	dx := a.X - b.X
	dy := a.Y - b.Y

	switch dx {
	case 1:
		a.Walls.Left = false
		b.Walls.Right = false
	case -1:
		a.Walls.Right = false
		b.Walls.Left = false
	}

	switch dy {
	case 1:
		a.Walls.Top = false
		b.Walls.Bottom = false
	case -1:
		a.Walls.Bottom = false
		b.Walls.Top = false
	}
}

// OpenWall removes the wall on side s of the cell at p, together with the
// mirrored wall of the neighbour when one exists. On the border only the
// border cell changes, which is how an exit is opened.
func (m *Maze) OpenWall(p Point, s Side) error {
	return m.setWall(p, s, false)
}

// CloseWall restores the wall on side s of the cell at p and its mirror.
func (m *Maze) CloseWall(p Point, s Side) error {
	return m.setWall(p, s, true)
}

func (m *Maze) setWall(p Point, s Side, present bool) error {
	if !m.Contains(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	m.Cells[p.Y][p.X].Walls.Set(s, present)
	if n := m.At(p.Step(s)); n != nil {
		n.Walls.Set(s.Opposite(), present)
	}

	return nil
}

// PassableNeighbors returns the in-grid neighbours of p whose shared wall is
// open, in the order top, bottom, left, right. Border openings never lead to
// a neighbour.
func (m *Maze) PassableNeighbors(p Point) []Point {
	c := m.At(p)
	if c == nil {
		return nil
	}
	out := make([]Point, 0, 4)
	for _, s := range Sides {
		if c.Walls.Has(s) {
			continue
		}
		q := p.Step(s)
		if m.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}

// Clone returns a structural copy: new cells, same coordinates, walls and
// Visited flags. Mutating the clone never affects m.
// Complexity: O(W×H).
func (m *Maze) Clone() *Maze {
	cells := make([][]*Cell, m.Height)
	for y := 0; y < m.Height; y++ {
		cells[y] = make([]*Cell, m.Width)
		for x := 0; x < m.Width; x++ {
			c := *m.Cells[y][x]
			cells[y][x] = &c
		}
	}

	return &Maze{Width: m.Width, Height: m.Height, Cells: cells}
}

// Reset closes every wall and clears every Visited flag, keeping the cells.
func (m *Maze) Reset() {
	for _, row := range m.Cells {
		for _, c := range row {
			c.Walls = Closed()
			c.Visited = false
		}
	}
}

// ResetVisited clears every Visited flag.
func (m *Maze) ResetVisited() {
	for _, row := range m.Cells {
		for _, c := range row {
			c.Visited = false
		}
	}
}

// Equal reports whether m and other have the same shape and wall flags.
// Visited flags are ignored.
func (m *Maze) Equal(other *Maze) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Cells[y][x].Walls != other.Cells[y][x].Walls {
				return false
			}
		}
	}

	return true
}
