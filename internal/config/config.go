package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	EnvTickInterval = "SNAKE_TICK_INTERVAL"
	EnvCherryImage  = "SNAKE_CHERRY_IMAGE"
	EnvLogLevel     = "SNAKE_LOG_LEVEL"
	EnvSeed         = "SNAKE_SEED"

	defaultTickInterval = 50 * time.Millisecond
	defaultCherryImage  = "cherry.png"
	defaultLogLevel     = "info"
)

// Config holds the game's runtime settings.
type Config struct {
	TickInterval time.Duration // Time between two game steps
	CherryImage  string        // Path of the optional cherry sprite
	LogLevel     log.Level     // Minimum level written to the log
	Seed         uint64        // Cherry RNG seed, 0 means seed from the clock
}

// Load reads the config from the environment, after loading the given .env
// files (or ./.env when none are given). A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		TickInterval: defaultTickInterval,
		CherryImage:  getEnvWithDefault(EnvCherryImage, defaultCherryImage),
	}

	if v, ok := os.LookupEnv(EnvTickInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s must be positive, got %s", EnvTickInterval, d)
		}
		cfg.TickInterval = d
	}

	level, err := log.ParseLevel(getEnvWithDefault(EnvLogLevel, defaultLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	cfg.LogLevel = level

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
