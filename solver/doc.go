// Package solver finds shortest paths and exits in a maze.Maze.
//
// What:
//
//   - ShortestPath(start, end): the inclusive start→end path with the fewest
//     steps, found by breadth-first search over passable neighbours.
//   - BFS(start): the full traversal (visit order, depth and parent of every
//     reached cell) for callers that need more than one path.
//   - FindAllExits / ExitPoints: the open boundary positions in scan order.
//   - NearestExit(start): the closest reachable exit and the path to it.
//
// Traversal rules:
//
//	Two adjacent cells are connected iff the wall between them is open.
//	Neighbours are expanded top, bottom, left, right, which also
//	breaks ties between equally short paths. A cell is marked visited when
//	it is enqueued, so each cell enters the queue at most once.
//
// Results:
//
//   - out-of-grid start or end  → nil path, error wrapping ErrOutOfBounds,
//     and a warning through the configured logger;
//   - end not reachable         → nil path, nil error;
//   - otherwise                 → the path, nil error.
//
// The solver never writes to the maze; the per-cell Visited flags are left
// alone and the search keeps its own state.
//
// Options:
//
//   - WithContext:   cancellation, checked once per dequeued cell.
//   - WithMaxDepth:  do not expand past depth d (d < 0 → ErrOptionViolation).
//   - WithOnEnqueue / WithOnVisit: hooks; a non-nil OnVisit error aborts.
//   - WithLogger:    logrus.FieldLogger for diagnostics.
//
// Complexity: O(W×H) time and memory per search.
package solver
