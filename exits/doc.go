// Package exits opens boundary walls on copies of a generated maze.
//
// What:
//
//   - MaxPossibleExits: count the open boundary positions of the held maze
//     using the shared boundary scan (top row, bottom row, then the left and
//     right columns without their corners).
//   - WithOneExit: a copy with every outer wall closed and exactly one
//     boundary position reopened. The side is drawn first, then a position
//     along it; corners are reached through their top/bottom walls only.
//   - WithMultipleExits: a copy with every outer wall closed and up to n
//     distinct boundary positions reopened, drawn without replacement.
//
// Copy-on-write:
//
//	The held maze is never written. Each call clones it structurally,
//	closes the boundary on the clone and opens walls there, so results are
//	independent of the source and of each other.
//
// Candidate order for WithMultipleExits:
//
//	for x in 0..W-1: (x,0) then (x,H-1); for y in 1..H-2: (0,y) then (W-1,y).
//	A point is opened on Top if y==0, else Bottom if y==H-1, else Left if
//	x==0, else Right. On one-row and one-column mazes this maps both slots of
//	a point onto the same wall; repeated points are dropped.
//
// Complexity:
//
//   - MaxPossibleExits: O(W+H).
//   - WithOneExit:      O(W×H) for the clone.
//   - WithMultipleExits: O(W×H + n×(W+H)).
//
// Errors:
//
//   - ErrNilMaze  NewManager called with a nil maze.
//
// A negative exit count is not an error: it is clamped to 0 and logged at
// warning level.
package exits
