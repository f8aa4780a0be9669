// Command mazedemo generates a maze, derives exit variants from it and
// prints the shortest path from the top-left cell to the first exit.
//
// Usage:
//
//	mazedemo [-config maze.yaml] [-env .env]
//
// Settings come from config.Load: defaults, .env, environment, YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/exits"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solver"
)

func main() {
	configPath := flag.String("config", "", "optional YAML settings file")
	envFile := flag.String("env", "", "optional .env file (default .env)")
	flag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(*configPath, envFiles...)
	if err != nil {
		log.Fatalf("mazedemo: %v", err)
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.Level())

	if err = run(os.Stdout, cfg, log.StandardLogger()); err != nil {
		log.Fatalf("mazedemo: %v", err)
	}
}

// run writes the whole demo to out.
func run(out io.Writer, cfg config.Config, logger log.FieldLogger) error {
	opts := append(cfg.GeneratorOptions(), generator.WithLogger(logger))
	style := render.WithStyle(cfg.RenderStyle())
	p := &printer{w: out}

	p.println("--- Generating a basic maze ---")
	m, err := generator.Generate(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return err
	}
	p.render(m, nil, style)

	mg, err := exits.NewManager(m, exits.WithSeed(cfg.Seed), exits.WithLogger(logger))
	if err != nil {
		return err
	}

	p.println("\n--- Maze with one exit ---")
	oneExit := mg.WithOneExit()
	p.render(oneExit, nil, style)
	p.printf("\nMaximum possible exits: %d\n", mg.MaxPossibleExits())

	p.printf("\n--- Maze with multiple exits (e.g., %d) ---\n", cfg.Exits)
	p.render(mg.WithMultipleExits(cfg.Exits), nil, style)

	p.println("\n--- Finding the shortest path ---")
	s, err := solver.New(oneExit, solver.WithLogger(logger))
	if err != nil {
		return err
	}
	found := s.ExitPoints()
	if len(found) == 0 {
		p.println("No exits found in the maze, cannot find a path.")
		return p.err
	}

	start, end := maze.Point{X: 0, Y: 0}, found[0]
	p.printf("Start point: (%d, %d)\n", start.X, start.Y)
	p.printf("End point (exit): (%d, %d)\n", end.X, end.Y)

	path, err := s.ShortestPath(start, end)
	if err != nil {
		return err
	}
	if path == nil {
		p.println("No path found between the selected points.")
		return p.err
	}
	p.println("\nShortest path found (marked with asterisks):")
	p.render(oneExit, path, style)
	p.printf("Path length: %d steps\n", len(path)-1)

	return p.err
}

// printer keeps the first write error so the demo reads top to bottom.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

func (p *printer) render(m *maze.Maze, path []maze.Point, opts ...render.Option) {
	if p.err == nil {
		p.err = render.RenderTo(p.w, m, path, opts...)
	}
}
