package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// bend is the 2×2 maze (0,0)→(0,1)→(1,1)→(1,0): a U open at the top.
func bend(t *testing.T) *maze.Maze {
	t.Helper()
	w := func(top, bottom, left, right bool) maze.Walls {
		return maze.Walls{Top: top, Bottom: bottom, Left: left, Right: right}
	}
	m, err := maze.FromWalls([][]maze.Walls{
		{w(true, false, true, true), w(true, false, true, true)},
		{w(false, true, true, false), w(false, true, false, true)},
	})
	require.NoError(t, err)
	return m
}

func TestRender_BoxGolden(t *testing.T) {
	cases := []struct {
		name string
		path []maze.Point
		want string
	}{
		{
			name: "NoPath",
			want: "┌───┬───┐\n" +
				"│   │   │\n" +
				"├       ┤\n" +
				"│       │\n" +
				"└───┴───┘\n",
		},
		{
			name: "WithPath",
			path: []maze.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
			want: "┌───┬───┐\n" +
				"│ * │   │\n" +
				"├       ┤\n" +
				"│ *   * │\n" +
				"└───┴───┘\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := render.Render(bend(t), tc.path)
			if got != tc.want {
				t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestRender_Junctions(t *testing.T) {
	m, err := maze.New(3, 2)
	require.NoError(t, err)
	// (0,0) keeps its bottom, (1,0) loses it, (2,0) keeps it.
	require.NoError(t, m.OpenWall(maze.Point{X: 1, Y: 0}, maze.Bottom))

	want := "┌───┬───┬───┐\n" +
		"│   │   │   │\n" +
		"├───┴   ┬───┤\n" +
		"│   │   │   │\n" +
		"└───┴───┴───┘\n"
	assert.Equal(t, want, render.Render(m, nil))

	full, _ := maze.New(2, 2)
	assert.Contains(t, render.Render(full, nil), "├───┼───┤\n")
}

func TestRender_SingleRow(t *testing.T) {
	m, _ := maze.New(3, 1)
	want := "┌───┬───┬───┐\n" +
		"│   │   │   │\n" +
		"└───┴───┴───┘\n"
	assert.Equal(t, want, render.Render(m, nil))
}

// TestRender_BoundaryOpeningsHidden: box style keeps the outer frame even
// where an exit is open; the ASCII style shows it.
func TestRender_BoundaryOpeningsHidden(t *testing.T) {
	m, _ := maze.New(1, 1)
	require.NoError(t, m.OpenWall(maze.Point{X: 0, Y: 0}, maze.Top))
	require.NoError(t, m.OpenWall(maze.Point{X: 0, Y: 0}, maze.Right))

	assert.Equal(t, "┌───┐\n│    \n└───┘\n", render.Render(m, nil))
	assert.Equal(t, "+   +\n|    \n+---+\n", render.Render(m, nil, render.WithStyle(render.ASCII)))
}

func TestRender_ASCIIGolden(t *testing.T) {
	path := []maze.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}
	got := render.Render(bend(t), path, render.WithStyle(render.ASCII), render.WithMarker('#'))

	want := "+---+---+\n" +
		"|   |   |\n" +
		"+   +   +\n" +
		"| #   # |\n" +
		"+---+---+\n"
	assert.Equal(t, want, got)
}

func TestRender_PathOutsideIgnored(t *testing.T) {
	m := bend(t)
	plain := render.Render(m, nil)
	assert.Equal(t, plain, render.Render(m, []maze.Point{{X: 5, Y: 5}, {X: -1, Y: 0}}))
}

func TestRender_DoesNotMutate(t *testing.T) {
	m, err := generator.Generate(6, 4, generator.WithSeed(2))
	require.NoError(t, err)
	before := m.Clone()
	path := []maze.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	pathBefore := append([]maze.Point(nil), path...)

	_ = render.Render(m, path)
	_ = render.Render(m, path, render.WithStyle(render.ASCII))

	assert.True(t, m.Equal(before))
	assert.Equal(t, pathBefore, path)
}

func TestRender_Shape(t *testing.T) {
	m, err := generator.Generate(15, 10, generator.WithSeed(1))
	require.NoError(t, err)

	out := render.Render(m, nil)
	lines := bytes.Split([]byte(out), []byte("\n"))
	// 1 top + 10 rows + 9 separators + 1 bottom, then the empty tail.
	require.Len(t, lines, 22)
	assert.Empty(t, lines[21])
	for i, l := range lines[:21] {
		assert.Equal(t, 15*4+1, len([]rune(string(l))), "line %d", i)
	}
}

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.RenderTo(&buf, bend(t), nil))
	assert.Equal(t, render.Render(bend(t), nil), buf.String())

	err := render.RenderTo(&buf, nil, nil)
	assert.ErrorIs(t, err, render.ErrNilMaze)
	assert.Equal(t, "", render.Render(nil, nil))

	boom := errors.New("boom")
	assert.ErrorIs(t, render.RenderTo(failingWriter{boom}, bend(t), nil), boom)
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestParseStyle(t *testing.T) {
	s, err := render.ParseStyle("ASCII")
	require.NoError(t, err)
	assert.Equal(t, render.ASCII, s)

	s, err = render.ParseStyle(" box ")
	require.NoError(t, err)
	assert.Equal(t, render.BoxDrawing, s)
	assert.Equal(t, "box", s.String())

	_, err = render.ParseStyle("html")
	assert.ErrorIs(t, err, render.ErrUnknownStyle)
}
