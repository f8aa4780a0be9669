package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
)

func TestRun_Default(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer

	require.NoError(t, run(&out, config.Default(), logger))
	s := out.String()

	for _, heading := range []string{
		"--- Generating a basic maze ---",
		"--- Maze with one exit ---",
		"Maximum possible exits: 0",
		"--- Maze with multiple exits (e.g., 3) ---",
		"--- Finding the shortest path ---",
		"Start point: (0, 0)",
		"Shortest path found (marked with asterisks):",
		"Path length: ",
	} {
		assert.Contains(t, s, heading)
	}
	// four 15×10 drawings: 21 lines each
	assert.Equal(t, 4, strings.Count(s, "┌───┬"))
	assert.Contains(t, s, " * ")
}

func TestRun_NegativeExitsWarns(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Exits = 4, 3, -2
	cfg.Style = "ascii"

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, logger))
	assert.Contains(t, out.String(), "+---+")
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, -2, hook.LastEntry().Data["requested"])
}
