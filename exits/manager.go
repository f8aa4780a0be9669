package exits

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
)

// Manager derives exit variants from one maze. Not safe for concurrent use:
// calls share the random source.
type Manager struct {
	src  *maze.Maze
	opts Options
	rng  generator.Source
}

// NewManager wraps m. The manager only reads m; callers must not mutate it
// while the manager is in use.
func NewManager(m *maze.Maze, opts ...Option) (*Manager, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := o.Rand
	if rng == nil {
		rng = generator.NewRand(o.Seed)
	}

	return &Manager{src: m, opts: o, rng: rng}, nil
}

// Source returns the held maze. Treat it as read-only.
func (mg *Manager) Source() *maze.Maze {
	return mg.src
}

// MaxPossibleExits counts the open boundary positions of the held maze.
func (mg *Manager) MaxPossibleExits() int {
	return mg.src.CountExits()
}

// WithOneExit returns a copy of the held maze whose boundary is closed
// except for one randomly chosen position.
func (mg *Manager) WithOneExit() *maze.Maze {
	out := mg.closedCopy()
	w, h := out.Width, out.Height

	// left/right own positions only when there is a row strictly between
	// the first and the last one.
	sides := []maze.Side{maze.Top, maze.Bottom}
	if h > 2 {
		sides = append(sides, maze.Left, maze.Right)
	}

	e := maze.Exit{Side: sides[mg.rng.Intn(len(sides))]}
	switch e.Side {
	case maze.Top:
		e.Point = maze.Point{X: mg.rng.Intn(w), Y: 0}
	case maze.Bottom:
		e.Point = maze.Point{X: mg.rng.Intn(w), Y: h - 1}
	case maze.Left:
		e.Point = maze.Point{X: 0, Y: 1 + mg.rng.Intn(h-2)}
	case maze.Right:
		e.Point = maze.Point{X: w - 1, Y: 1 + mg.rng.Intn(h-2)}
	}
	open(out, e)

	mg.opts.Logger.WithField("exit", e.String()).Debug("exits: opened one exit")

	return out
}

// WithMultipleExits returns a copy of the held maze whose boundary is closed
// except for up to n distinct randomly chosen positions. n larger than the
// number of positions opens all of them; negative n is clamped to 0.
func (mg *Manager) WithMultipleExits(n int) *maze.Maze {
	if n < 0 {
		mg.opts.Logger.WithField("requested", n).Warn("exits: negative exit count clamped to 0")
		n = 0
	}

	out := mg.closedCopy()
	candidates := candidatePoints(out.Width, out.Height)
	opened := 0
	for opened < n && len(candidates) > 0 {
		i := mg.rng.Intn(len(candidates))
		p := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)
		open(out, maze.Exit{Point: p, Side: boundarySide(p, out.Width, out.Height)})
		opened++
	}

	mg.opts.Logger.WithFields(logrus.Fields{
		"requested": n,
		"opened":    opened,
	}).Debug("exits: opened multiple exits")

	return out
}

// closedCopy clones the held maze and closes every outer wall of the clone.
func (mg *Manager) closedCopy() *maze.Maze {
	out := mg.src.Clone()
	out.CloseBoundary()
	return out
}

// candidatePoints lists boundary points in draw order, dropping a point
// that repeats the one before it (one-row and one-column mazes).
func candidatePoints(w, h int) []maze.Point {
	out := make([]maze.Point, 0, 2*w+2*max(h-2, 0))
	add := func(p maze.Point) {
		if n := len(out); n > 0 && out[n-1] == p {
			return
		}
		out = append(out, p)
	}

	for x := 0; x < w; x++ {
		add(maze.Point{X: x, Y: 0})
		add(maze.Point{X: x, Y: h - 1})
	}
	for y := 1; y < h-1; y++ {
		add(maze.Point{X: 0, Y: y})
		add(maze.Point{X: w - 1, Y: y})
	}

	return out
}

// boundarySide picks the outer wall opened for a boundary point:
// Top wins over Bottom, which wins over Left, which wins over Right.
func boundarySide(p maze.Point, w, h int) maze.Side {
	switch {
	case p.Y == 0:
		return maze.Top
	case p.Y == h-1:
		return maze.Bottom
	case p.X == 0:
		return maze.Left
	default:
		return maze.Right
	}
}

// open removes a boundary wall. Boundary points are always inside the grid.
func open(m *maze.Maze, e maze.Exit) {
	_ = m.OpenWall(e.Point, e.Side)
}
