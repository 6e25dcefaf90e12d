// Package main is the interactive console entry point. It asks for one
// registration after another on stdin until input ends.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/pkordes/community-garden/backend/internal/config"
	"github.com/pkordes/community-garden/backend/internal/flow"
	"github.com/pkordes/community-garden/backend/internal/repo"
	"github.com/pkordes/community-garden/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("garden console stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config -----------------------------------------------------------
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	// stdout carries the dialogue, so logs go to stderr.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// The console has no scrape endpoint; metrics stay disabled (nil).
	registrations := service.NewRegistrationService(repo.NewAppointmentLog(cfg.AppointmentsFile),
		service.WithLogger(logger),
		service.WithStrictLog(cfg.StrictLog),
	)
	donations := service.NewDonationService(logger, nil)

	// Reads from stdin cannot be interrupted, so SIGINT keeps its default
	// behaviour and ends the process; Ctrl-D ends the session cleanly.
	ctx := context.Background()

	console := flow.NewConsole(os.Stdin, os.Stdout)
	f := flow.New(registrations, donations, console, os.Stdout, logger)

	for {
		out, err := f.Run(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		logger.Debug("registration attempt finished", "state", out.State.String())
	}

	logger.Info("session ended", "registrations", len(registrations.Registrations(ctx)))
	return nil
}
