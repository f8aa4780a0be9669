package solver_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

// ExampleSolver_ShortestPath solves a 3×1 corridor and shows the "none"
// result for a point outside the grid.
func ExampleSolver_ShortestPath() {
	m, _ := maze.New(3, 1)
	_ = m.OpenWall(maze.Point{X: 0, Y: 0}, maze.Right)
	_ = m.OpenWall(maze.Point{X: 1, Y: 0}, maze.Right)

	s, err := solver.New(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := s.ShortestPath(maze.Point{X: 0, Y: 0}, maze.Point{X: 2, Y: 0})
	fmt.Println(path, "steps:", len(path)-1)

	// Logger output goes to stderr; only the result is printed here.
	path, err = s.ShortestPath(maze.Point{X: -1, Y: 0}, maze.Point{X: 0, Y: 0})
	fmt.Println(path == nil, err != nil)
	// Output:
	// [(0,0) (1,0) (2,0)] steps: 2
	// true true
}
