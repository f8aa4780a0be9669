// Package labyrinth is a small toolkit for building, opening, solving and
// drawing rectangular mazes.
//
// 🚀 What is labyrinth?
//
//	A pure-Go set of packages that work on one shared grid model:
//		• maze/      cells, walls, boundary scan, structural clone & checks
//		• generator/ perfect mazes: randomized DFS (default), Wilson or Kruskal
//		• exits/     copy-on-write variants with one or many exits
//		• solver/    BFS shortest paths, exit discovery, nearest exit
//		• render/    box-drawing or ASCII text output with a marked path
//		• config/    .env, environment and YAML settings for the demo
//
// ✨ Guarantees
//
//   - Every generated maze is a spanning tree: W·H−1 open walls, one component.
//   - Shared walls are always mirrored on both cells.
//   - All randomness is injected; the same seed gives the same maze.
//   - Exit variants never touch the maze they were derived from.
//
// Data flows one way:
//
//	maze → generator → exits | solver → render
//
// Quick example (3×2, path marked):
//
//	┌───┬───┬───┐
//	│ *   *   * │
//	├───┼───┴   ┤
//	│         * │
//	└───┴───┴───┘
//
// See cmd/mazedemo for an end-to-end run.
//
//	go run github.com/katalvlaran/labyrinth/cmd/mazedemo
package labyrinth
