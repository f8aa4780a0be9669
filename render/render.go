package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/maze"
)

var (
	// ErrNilMaze is returned by RenderTo for a nil maze.
	ErrNilMaze = errors.New("render: maze is nil")

	// ErrUnknownStyle is returned by ParseStyle for an unrecognised name.
	ErrUnknownStyle = errors.New("render: unknown style")
)

// Style selects the glyph set.
type Style int

const (
	// BoxDrawing uses Unicode box-drawing characters.
	BoxDrawing Style = iota
	// ASCII uses '+', '-' and '|'.
	ASCII
)

func (s Style) String() string {
	switch s {
	case BoxDrawing:
		return "box"
	case ASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle maps "box" or "ascii" (case-insensitive) to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "box":
		return BoxDrawing, nil
	case "ascii":
		return ASCII, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Option configures rendering.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	Style  Style
	Marker rune
}

// DefaultOptions returns BoxDrawing with the '*' marker.
func DefaultOptions() Options {
	return Options{Style: BoxDrawing, Marker: '*'}
}

// WithStyle selects the glyph set.
func WithStyle(s Style) Option {
	return func(o *Options) {
		o.Style = s
	}
}

// WithMarker sets the rune drawn in path cells.
func WithMarker(r rune) Option {
	return func(o *Options) {
		o.Marker = r
	}
}

// Render returns the drawing of m with the cells of path marked.
// A nil maze renders as the empty string.
func Render(m *maze.Maze, path []maze.Point, opts ...Option) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	_ = RenderTo(&sb, m, path, opts...)
	return sb.String()
}

// RenderTo writes the drawing of m to w.
func RenderTo(w io.Writer, m *maze.Maze, path []maze.Point, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	onPath := mapset.New[maze.Point]()
	for _, p := range path {
		onPath.Put(p)
	}
	mark := " " + string(o.Marker) + " "
	content := func(x, y int) string {
		if onPath.Has(maze.Point{X: x, Y: y}) {
			return mark
		}
		return "   "
	}

	var sb strings.Builder
	sb.Grow((m.Height*2 + 1) * (m.Width*4 + 2) * 3)
	switch o.Style {
	case ASCII:
		ascii(&sb, m, content)
	default:
		box(&sb, m, content)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

//----------------------------------------------------------------------------//
// Box drawing
//----------------------------------------------------------------------------//

func box(sb *strings.Builder, m *maze.Maze, content func(x, y int) string) {
	border(sb, m.Width, "┌", "┬", "┐")

	for y := 0; y < m.Height; y++ {
		sb.WriteString("│")
		for x := 0; x < m.Width; x++ {
			sb.WriteString(content(x, y))
			if m.Cells[y][x].Walls.Right {
				sb.WriteString("│")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		if y == m.Height-1 {
			break
		}
		sb.WriteString("├")
		for x := 0; x < m.Width; x++ {
			bottom := m.Cells[y][x].Walls.Bottom
			if bottom {
				sb.WriteString("───")
			} else {
				sb.WriteString("   ")
			}
			if x < m.Width-1 {
				sb.WriteString(junction(bottom, m.Cells[y][x+1].Walls.Bottom))
			}
		}
		sb.WriteString("┤\n")
	}

	border(sb, m.Width, "└", "┴", "┘")
}

// junction joins the bottom walls of two horizontally adjacent cells.
func junction(left, right bool) string {
	switch {
	case left && right:
		return "┼"
	case left:
		return "┴"
	case right:
		return "┬"
	default:
		return " "
	}
}

// border writes a fixed horizontal border line.
func border(sb *strings.Builder, width int, first, mid, last string) {
	sb.WriteString(first)
	for x := 0; x < width; x++ {
		sb.WriteString("───")
		if x < width-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(last)
	sb.WriteString("\n")
}

//----------------------------------------------------------------------------//
// ASCII
//----------------------------------------------------------------------------//

func ascii(sb *strings.Builder, m *maze.Maze, content func(x, y int) string) {
	sb.WriteString("+")
	for x := 0; x < m.Width; x++ {
		sb.WriteString(segment(m.Cells[0][x].Walls.Top))
	}
	sb.WriteString("\n")

	for y := 0; y < m.Height; y++ {
		if m.Cells[y][0].Walls.Left {
			sb.WriteString("|")
		} else {
			sb.WriteString(" ")
		}
		for x := 0; x < m.Width; x++ {
			sb.WriteString(content(x, y))
			if m.Cells[y][x].Walls.Right {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		sb.WriteString("+")
		for x := 0; x < m.Width; x++ {
			sb.WriteString(segment(m.Cells[y][x].Walls.Bottom))
		}
		sb.WriteString("\n")
	}
}

func segment(wall bool) string {
	if wall {
		return "---+"
	}
	return "   +"
}
