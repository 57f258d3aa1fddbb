// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible sessions.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SoundEnabled is the initial state of the menu sound toggle.
	SoundEnabled bool

	// TickInterval is the time between exploration updates.
	TickInterval time.Duration

	Environment string
	LogLevel    slog.Level
	LogFile     string // The terminal owns stdout, so logs go to a file
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset or malformed.
func Load() *Config {
	tickMS := parseInt64(getEnv("DUNGEONESCAPE_TICK_MS", "100"), 100)
	if tickMS <= 0 {
		tickMS = 100
	}
	return &Config{
		Seed:         parseInt64(getEnv("DUNGEONESCAPE_SEED", "0"), 0),
		SoundEnabled: parseBool(getEnv("DUNGEONESCAPE_SOUND", "true"), true),
		TickInterval: time.Duration(tickMS) * time.Millisecond,
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:      getEnv("LOG_FILE", "dungeonescape.log"),
	}
}

// NewRand returns the session's single random source.
func (c *Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseInt64(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func parseBool(value string, fallback bool) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
