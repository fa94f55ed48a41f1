// Package main is the entry point for the ground plane sandbox.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/groundplane/internal/config"
	"github.com/Faultbox/groundplane/internal/game"
	"github.com/Faultbox/groundplane/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration (.env, file, environment, flags)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Ground Plane ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("main loop error", zap.Error(err))
		g.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}
