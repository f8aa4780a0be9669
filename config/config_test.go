package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// noEnvFile points Load at a .env file that does not exist, so a stray
// .env in the package directory cannot influence the tests.
func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("", noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, 15, c.Width)
	assert.Equal(t, 10, c.Height)
	assert.Equal(t, int64(0), c.Seed)
	assert.Equal(t, 3, c.Exits)
	assert.Equal(t, "backtracker", c.Algorithm)
	assert.Equal(t, "box", c.Style)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvWidth, "8")
	t.Setenv(config.EnvHeight, "6")
	t.Setenv(config.EnvSeed, "-42")
	t.Setenv(config.EnvExits, "5")
	t.Setenv(config.EnvAlgorithm, "Wilson")
	t.Setenv(config.EnvStyle, "ascii")
	t.Setenv(config.EnvLogLevel, "debug")

	c, err := config.Load("", noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Width: 8, Height: 6, Seed: -42, Exits: 5,
		Algorithm: "Wilson", Style: "ascii", LogLevel: "debug",
	}, c)
}

func TestLoad_DotEnv(t *testing.T) {
	env := writeFile(t, "maze.env", "MAZE_WIDTH=21\nMAZE_HEIGHT=9\nMAZE_STYLE=ascii\n")
	t.Setenv(config.EnvHeight, "4") // the process environment wins

	c, err := config.Load("", env)
	require.NoError(t, err)
	assert.Equal(t, 21, c.Width)
	assert.Equal(t, 4, c.Height)
	assert.Equal(t, "ascii", c.Style)

	_, set := os.LookupEnv(config.EnvWidth)
	assert.False(t, set, ".env values must not be exported")
}

func TestLoad_YAMLOverridesEnv(t *testing.T) {
	t.Setenv(config.EnvWidth, "8")
	t.Setenv(config.EnvExits, "2")
	path := writeFile(t, "maze.yaml", "width: 30\nalgorithm: wilson\nlog_level: warn\n")

	c, err := config.Load(path, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 30, c.Width)
	assert.Equal(t, 10, c.Height, "absent keys keep earlier values")
	assert.Equal(t, 2, c.Exits)
	assert.Equal(t, "wilson", c.Algorithm)
	assert.Equal(t, logrus.WarnLevel, c.Level())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		yaml string
		want error
	}{
		{"BadWidth", map[string]string{config.EnvWidth: "wide"}, "", config.ErrInvalidValue},
		{"BadSeed", map[string]string{config.EnvSeed: "1.5"}, "", config.ErrInvalidValue},
		{"ZeroHeight", map[string]string{config.EnvHeight: "0"}, "", maze.ErrInvalidDimensions},
		{"NegativeWidthYAML", nil, "width: -3\n", maze.ErrInvalidDimensions},
		{"UnknownAlgorithm", map[string]string{config.EnvAlgorithm: "prim"}, "", config.ErrInvalidValue},
		{"UnknownStyle", nil, "style: html\n", config.ErrInvalidValue},
		{"UnknownLevel", map[string]string{config.EnvLogLevel: "loud"}, "", config.ErrInvalidValue},
		{"UnknownYAMLKey", nil, "colour: red\n", config.ErrInvalidValue},
		{"YAMLTypeMismatch", nil, "exits: many\n", config.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.yaml != "" {
				path = writeFile(t, "maze.yaml", tc.yaml)
			}
			_, err := config.Load(path, noEnvFile(t))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_MissingYAML(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), noEnvFile(t))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDecode_EmptyDocument(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Decode(strings.NewReader("  \n")))
	assert.Equal(t, config.Default(), c)
}

func TestValidate_NegativeExitsAccepted(t *testing.T) {
	c := config.Default()
	c.Exits = -1
	assert.NoError(t, c.Validate())
}

func TestConfig_Translations(t *testing.T) {
	c := config.Default()
	c.Seed = 9
	c.Algorithm = "WILSON"
	c.Style = "ascii"

	a, err := generator.Generate(7, 5, c.GeneratorOptions()...)
	require.NoError(t, err)
	b, err := generator.Generate(7, 5, generator.WithSeed(9), generator.WithAlgorithm(generator.Wilson))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	assert.Equal(t, render.ASCII, c.RenderStyle())
	c.Style = "bogus"
	assert.Equal(t, render.BoxDrawing, c.RenderStyle())
	c.LogLevel = "bogus"
	assert.Equal(t, logrus.InfoLevel, c.Level())
}
