// Package maze models a rectangular maze as a 2D grid of walled cells.
//
// What:
//
//   - Maze wraps a Height×Width grid of *Cell, indexed Cells[y][x].
//   - Every Cell carries four independent wall flags (Top, Bottom, Left, Right);
//     true means the wall is present and the direction is impassable.
//   - Points address cells independently of any Maze instance.
//   - Exits describe boundary openings: a Point plus the Side that faces outwards.
//
// Shared-edge invariant:
//
//	Two grid-adjacent cells share one physical wall. Every mutator in this
//	package (RemoveWall, OpenWall, CloseWall) updates both mirrored flags in
//	the same call, so A.Walls.Right == B.Walls.Left always holds for
//	horizontally adjacent A,B (and Bottom/Top for vertical pairs).
//
// Boundary scan:
//
//	BoundaryPositions, Exits and CountExits all walk the perimeter in the same
//	order: top row (x ascending), bottom row (x ascending), left column and
//	then right column (y ascending, corners excluded). Corner cells are
//	therefore only ever counted through their Top or Bottom wall.
//
// Analysis:
//
//   - OpenEdges:           number of interior shared walls that are open.
//   - IsSymmetric:         every shared wall agrees on both sides.
//   - ConnectedComponents: BFS over passable neighbours.
//   - IsPerfect:           symmetric, one component, exactly W·H−1 open edges.
//
// Complexity:
//
//   - New, Clone, CloseBoundary:          O(W×H) time and memory.
//   - BoundaryPositions, Exits:           O(W+H).
//   - ConnectedComponents, IsPerfect:     O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrNonRectangular:    FromWalls rows of differing lengths.
//   - ErrAsymmetricWalls:   FromWalls input with a one-sided shared wall.
//   - ErrOutOfBounds:       a Point outside [0,Width)×[0,Height).
package maze
