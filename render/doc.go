// Package render draws a maze.Maze as text, optionally marking a path.
//
// Styles:
//
//   - BoxDrawing (default): Unicode frame. The top and bottom borders and
//     the outer vertical glyphs are drawn unconditionally; inside, a cell's
//     right wall is "│" and its bottom wall "───". Between two rows each
//     junction is chosen from the bottom walls of the two cells it joins:
//     "┼" both, "┴" left only, "┬" right only, " " neither. Boundary
//     openings are not shown.
//   - ASCII: "+---+" frame in which every wall, boundary included, is drawn
//     from the cell flags, so exits are visible.
//
// Every line ends with "\n". Path cells are drawn as " * " (the marker can
// be changed with WithMarker); other cells are blank.
//
// Rendering never mutates the maze or the path.
//
// Complexity: O(W×H + len(path)).
package render
