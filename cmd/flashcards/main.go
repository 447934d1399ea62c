package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kpauljoseph/flashcards/internal/config"
	"github.com/kpauljoseph/flashcards/internal/session"
	"github.com/kpauljoseph/flashcards/pkg/logger"
	"github.com/kpauljoseph/flashcards/pkg/version"
)

func main() {
	opts := config.Parse(os.Args[1:])

	if opts.ShowVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	cfg, err := config.Resolve(opts)
	if err != nil {
		logger.New(logger.WithPrefix("[flashcards] ")).Fatal("Error loading config: %v", err)
	}

	level := logger.LevelInfo
	if cfg.Debug {
		level = logger.LevelTrace
	}
	log := logger.New(
		logger.WithPrefix("[flashcards] "),
		logger.WithLevel(level),
	)
	log.SetVerbose(cfg.Verbose)
	log.Debug("Starting %s", version.GetVersionInfo())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s := session.New(os.Stdin, os.Stdout,
		session.WithLogger(log),
		session.WithDefaultLogFile(cfg.LogFile),
	)

	if cfg.ImportPath != "" {
		log.Debug("Importing cards from %s", cfg.ImportPath)
		s.ImportFile(cfg.ImportPath)
	}

	if err := s.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Interrupted, shutting down")
		} else {
			log.Error("Command loop stopped: %v", err)
		}
	}

	if cfg.ExportPath != "" {
		log.Debug("Exporting cards to %s", cfg.ExportPath)
		s.ExportFile(cfg.ExportPath)
	}

	s.Close()
}
