// Package maze defines core types and sentinel errors
// for the maze grid model of github.com/katalvlaran/labyrinth.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("maze: width and height must be positive")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrAsymmetricWalls indicates a shared wall that is open on one side only.
	ErrAsymmetricWalls = errors.New("maze: shared wall differs between adjacent cells")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("maze: point out of bounds")
)

// Side names one of the four walls of a cell.
// The declaration order is the neighbour expansion order used by every
// traversal in this module: Top, Bottom, Left, Right.
type Side int

const (
	// Top is the wall towards y-1.
	Top Side = iota
	// Bottom is the wall towards y+1.
	Bottom
	// Left is the wall towards x-1.
	Left
	// Right is the wall towards x+1.
	Right
)

// Sides lists all sides in expansion order.
var Sides = [4]Side{Top, Bottom, Left, Right}

// sideOffsets holds (dx,dy) per Side, indexed by the Side value.
var sideOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Offset returns the coordinate delta that crosses side s.
func (s Side) Offset() (dx, dy int) {
	return sideOffsets[s][0], sideOffsets[s][1]
}

// Opposite returns the side facing s across a shared wall.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Walls holds the four wall flags of a cell; true means the wall is present.
type Walls struct {
	Top, Bottom, Left, Right bool
}

// Closed returns Walls with all four walls present.
func Closed() Walls {
	return Walls{Top: true, Bottom: true, Left: true, Right: true}
}

// Has reports whether the wall on side s is present.
func (w Walls) Has(s Side) bool {
	switch s {
	case Top:
		return w.Top
	case Bottom:
		return w.Bottom
	case Left:
		return w.Left
	default:
		return w.Right
	}
}

// Set sets the wall on side s.
func (w *Walls) Set(s Side, present bool) {
	switch s {
	case Top:
		w.Top = present
	case Bottom:
		w.Bottom = present
	case Left:
		w.Left = present
	default:
		w.Right = present
	}
}

// Cell is one grid square. Visited is scratch state for generators.
type Cell struct {
	X, Y    int   // Coordinates within the grid
	Visited bool  // Set while a generator walks the grid
	Walls   Walls // Wall flags, true = present
}

// Point is a coordinate pair, not tied to a Maze instance.
type Point struct {
	X, Y int
}

// Step returns the point across side s.
func (p Point) Step(s Side) Point {
	dx, dy := s.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Exit is a boundary position: the cell and its outward-facing side.
type Exit struct {
	Point
	Side Side
}

func (e Exit) String() string {
	return fmt.Sprintf("%s %s", e.Point, e.Side)
}

// Maze is a rectangular grid of cells. Width and Height are fixed after
// construction; cell contents are mutable.
type Maze struct {
	Width, Height int
	Cells         [][]*Cell
}
