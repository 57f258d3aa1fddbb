package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DUNGEONESCAPE_SEED", "DUNGEONESCAPE_SOUND", "DUNGEONESCAPE_TICK_MS", "ENVIRONMENT", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, int64(0), cfg.Seed)
	assert.True(t, cfg.SoundEnabled)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "dungeonescape.log", cfg.LogFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUNGEONESCAPE_SEED", "42")
	t.Setenv("DUNGEONESCAPE_SOUND", "false")
	t.Setenv("DUNGEONESCAPE_TICK_MS", "16")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("LOG_FILE", "/tmp/game.log")

	cfg := Load()

	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.SoundEnabled)
	assert.Equal(t, 16*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "/tmp/game.log", cfg.LogFile)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DUNGEONESCAPE_SEED", "abc")
	t.Setenv("DUNGEONESCAPE_SOUND", "maybe")
	t.Setenv("DUNGEONESCAPE_TICK_MS", "-5")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := Load()

	assert.Equal(t, int64(0), cfg.Seed)
	assert.True(t, cfg.SoundEnabled)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestNewRandIsSeeded(t *testing.T) {
	cfg := &Config{Seed: 7}
	a, b := cfg.NewRand(), cfg.NewRand()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}
