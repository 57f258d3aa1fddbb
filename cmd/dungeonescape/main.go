// Package main is the entry point for Dungeon Escape.
package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonescape/internal/config"
	"github.com/samdwyer/dungeonescape/internal/game"
	"github.com/samdwyer/dungeonescape/internal/gamedata"
	"github.com/samdwyer/dungeonescape/internal/logger"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := config.Load()

	// The terminal belongs to the game, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file %s: %v", cfg.LogFile, err)
	}
	defer logFile.Close()
	appLogger := logger.WithSession(logger.Setup(cfg, logFile), uuid.NewString())

	telemetry.ConfigureHoneycombEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.WithError(appLogger, err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.WithError(appLogger, err).Warn("telemetry shutdown failed")
			}
		}()
	}
	appLogger.Info("telemetry configured", "exporting", telemetry.Enabled())

	content, err := gamedata.LoadContent()
	if err != nil {
		logger.WithError(appLogger, err).Error("content tables rejected")
		log.Fatalf("Failed to load content: %v", err)
	}

	// Create and run game
	g, err := game.New(cfg, content, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.WithError(appLogger, err).Error("game exited with error")
		log.Printf("Game error: %v", err)
	}
}
