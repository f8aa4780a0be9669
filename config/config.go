// Package config loads the settings of the maze demo from a .env file,
// environment variables and an optional YAML file, in that order of
// increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// ErrInvalidValue is returned for a setting that cannot be parsed or is
// not one of the accepted values.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the demo settings.
type Config struct {
	Width     int    `yaml:"width"`     // maze width in cells
	Height    int    `yaml:"height"`    // maze height in cells
	Seed      int64  `yaml:"seed"`      // 0 selects the fixed default seed
	Exits     int    `yaml:"exits"`     // exits opened in the multi-exit variant
	Algorithm string `yaml:"algorithm"` // "backtracker" or "wilson"
	Style     string `yaml:"style"`     // "box" or "ascii"
	LogLevel  string `yaml:"log_level"` // any logrus level name
}

// Default returns the built-in settings: a 15×10 backtracker maze, seed 0,
// three exits, box drawing, info logging.
func Default() Config {
	return Config{
		Width:     15,
		Height:    10,
		Seed:      0,
		Exits:     3,
		Algorithm: string(generator.Backtracker),
		Style:     render.BoxDrawing.String(),
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Load builds a Config from Default, then the given .env files (".env"
// when none are named; missing files are skipped), then the process
// environment, then the YAML file at path when path is non-empty. The
// result is validated.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()

	dotenv, err := godotenv.Read(envFiles...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read env file: %w", err)
		}
		logrus.WithError(err).Debug("config: env file not loaded")
		dotenv = map[string]string{}
	}
	if err = c.applyEnv(envLookup(dotenv)); err != nil {
		return Config{}, err
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err = c.Decode(f); err != nil {
			return Config{}, fmt.Errorf("%w (%s)", err, path)
		}
	}

	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Decode overlays the YAML document read from r onto c. Keys absent from
// the document keep their current values; unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("config: read yaml: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("%w: yaml: %v", ErrInvalidValue, err)
	}
	return nil
}

// Validate checks dimensions and the enumerated settings. Non-positive
// dimensions yield maze.ErrInvalidDimensions; anything else ErrInvalidValue.
// A negative Exits value is accepted: the exit manager clamps it.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", maze.ErrInvalidDimensions, c.Width, c.Height)
	}
	if _, err := generator.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %v", ErrInvalidValue, err)
	}
	if _, err := render.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%w: style: %v", ErrInvalidValue, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidValue, err)
	}
	return nil
}

// GeneratorOptions translates the settings into generator options.
func (c Config) GeneratorOptions() []generator.Option {
	algo, _ := generator.ParseAlgorithm(c.Algorithm)
	return []generator.Option{
		generator.WithSeed(c.Seed),
		generator.WithAlgorithm(algo),
	}
}

// RenderStyle returns the configured style, BoxDrawing if it is invalid.
func (c Config) RenderStyle() render.Style {
	s, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.BoxDrawing
	}
	return s
}

// Level returns the configured log level, InfoLevel if it is invalid.
func (c Config) Level() logrus.Level {
	l, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}
