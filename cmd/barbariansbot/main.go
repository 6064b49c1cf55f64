package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/app"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/config"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Error("configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
