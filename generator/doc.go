// Package generator carves perfect mazes (spanning trees over the grid
// graph) into a fully walled maze.Maze.
//
// What:
//
//   - Backtracker (default): randomized iterative depth-first search with an
//     explicit stack. Start at (0,0), mark visited, push. Repeatedly peek the
//     top cell, collect its unvisited neighbours (top, bottom, left, right);
//     if none, pop; otherwise pick one uniformly, open the shared wall, mark
//     it visited and push it.
//   - Wilson: loop-erased random walks from random unvisited cells until the
//     walk hits the tree; produces a uniform spanning tree.
//   - Kruskal: shuffle every interior wall, then open a wall whenever it
//     joins two regions of a disjoint set.
//
// Either way the result has every cell reachable from every other through
// exactly one simple path, and exactly W·H−1 open interior walls.
//
// Determinism:
//
//	All randomness comes from an injected Source. WithRand supplies one
//	directly; otherwise WithSeed builds a math/rand stream (seed 0 maps to a
//	fixed default, never to the clock). Identical options ⇒ identical mazes.
//
// Ownership:
//
//	A Generator owns its maze until Generate returns. Calling Generate again
//	resets and re-carves the same cells, so keep a Clone of any result you
//	still need.
//
// Complexity:
//
//   - Backtracker: O(W×H) time, O(W×H) stack in the worst case.
//   - Wilson:      expected O(W×H × cover time) walk steps, O(W×H) memory.
//   - Kruskal:     O(W×H·α(W×H)) time, O(W×H) memory.
//
// Errors:
//
//   - maze.ErrInvalidDimensions  width or height ≤ 0.
//   - maze.ErrOutOfBounds        WithStart outside the grid.
//   - ErrUnknownAlgorithm        WithAlgorithm value not recognised.
package generator
