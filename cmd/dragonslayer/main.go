// Package main is the entry point for Dragonslayer.
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dragonslayer/internal/game"
	"github.com/samdwyer/dragonslayer/internal/logger"
	"github.com/samdwyer/dragonslayer/internal/telemetry"
	"github.com/samdwyer/dragonslayer/internal/ui"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		// Not fatal.
		_ = err
	}

	logger.Init()

	var seed int64
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.Parse()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	cfg := game.DefaultConfig()
	cfg.Seed = seed

	session, err := game.NewSession(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to create session")
	}

	client, err := ui.NewClient(session)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to initialize terminal")
	}

	if err := client.Run(ctx); err != nil {
		logger.Log.WithError(err).Fatal("game error")
	}
}
