package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvWidth     = "MAZE_WIDTH"
	EnvHeight    = "MAZE_HEIGHT"
	EnvSeed      = "MAZE_SEED"
	EnvExits     = "MAZE_EXITS"
	EnvAlgorithm = "MAZE_ALGORITHM"
	EnvStyle     = "MAZE_STYLE"
	EnvLogLevel  = "LOG_LEVEL"
)

// lookupFunc returns the value of a variable and whether it is set.
type lookupFunc func(key string) (string, bool)

// envLookup prefers the process environment over values read from .env
// files, so the .env content never leaks into os.Environ.
func envLookup(dotenv map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// applyEnv overrides the fields whose variables are set.
func (c *Config) applyEnv(lookup lookupFunc) error {
	if err := getEnvAsInt(lookup, EnvWidth, &c.Width); err != nil {
		return err
	}
	if err := getEnvAsInt(lookup, EnvHeight, &c.Height); err != nil {
		return err
	}
	if err := getEnvAsInt(lookup, EnvExits, &c.Exits); err != nil {
		return err
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, EnvSeed, v)
		}
		c.Seed = seed
	}
	c.Algorithm = getEnvWithDefault(lookup, EnvAlgorithm, c.Algorithm)
	c.Style = getEnvWithDefault(lookup, EnvStyle, c.Style)
	c.LogLevel = getEnvWithDefault(lookup, EnvLogLevel, c.LogLevel)

	return nil
}

// getEnvAsInt stores the integer value of key in dst when key is set.
func getEnvAsInt(lookup lookupFunc, key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, key, v)
	}
	*dst = n
	return nil
}

// getEnvWithDefault returns the value of key, or def when it is not set.
func getEnvWithDefault(lookup lookupFunc, key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}
