package solver

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// FindAllExits returns the open boundary positions in scan order: top row
// left→right, bottom row left→right, then the left and right columns
// top→bottom without their corners.
func (s *Solver) FindAllExits() []maze.Exit {
	return s.maze.Exits()
}

// ExitPoints returns the cells of FindAllExits, in the same order. A cell
// open on two boundary sides appears twice.
func (s *Solver) ExitPoints() []maze.Point {
	exits := s.maze.Exits()
	out := make([]maze.Point, len(exits))
	for i, e := range exits {
		out[i] = e.Point
	}

	return out
}

// NearestExit returns the exit whose cell is the fewest steps from start,
// with the path to that cell. Among equally close cells the one BFS visits
// first wins; a cell open on two sides reports the side met first in scan
// order. Returns ErrNoExit when no exit is reachable and ErrOutOfBounds for
// an out-of-grid start.
func (s *Solver) NearestExit(start maze.Point) (maze.Exit, []maze.Point, error) {
	exits := s.maze.Exits()
	if len(exits) == 0 {
		return maze.Exit{}, nil, fmt.Errorf("%w: maze has no exits", ErrNoExit)
	}
	byCell := make(map[maze.Point]maze.Exit, len(exits))
	for i := len(exits) - 1; i >= 0; i-- {
		byCell[exits[i].Point] = exits[i]
	}

	res, err := s.BFS(start)
	if err != nil {
		return maze.Exit{}, nil, err
	}
	for _, p := range res.Order {
		if e, ok := byCell[p]; ok {
			path, err := res.PathTo(p)
			if err != nil {
				return maze.Exit{}, nil, err
			}
			return e, path, nil
		}
	}

	return maze.Exit{}, nil, fmt.Errorf("%w: none reachable from %v", ErrNoExit, start)
}
