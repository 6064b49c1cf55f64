package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/config"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/infrastructure/telegram"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/logging"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/ports"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/router"
	"github.com/heisenbergtrx/barbarians-telegram-bot/internal/usecase"
)

const stopTimeout = 5 * time.Second

// Application wires configuration to the bot's collaborators and owns the
// polling lifecycle.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	client *telegram.Client
	feed   ports.UpdateFeed
	router *router.Router
}

// New builds a runnable bot instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := telegram.NewClient(cfg.Telegram.BotToken, nil)
	gateway := telegram.NewGateway(client)
	feed := telegram.NewPoller(client, cfg.Telegram.PollTimeoutSeconds,
		baseLogger.With("component", "poller"))

	store := usecase.NewConversationStore()
	intake := usecase.NewIntake(usecase.IntakeDeps{
		Store:       store,
		Messenger:   gateway,
		AdminChatID: cfg.Intake.AdminGroupID,
		Logger:      baseLogger.With("component", "intake"),
	})
	decisions := usecase.NewDecisions(usecase.DecisionDeps{
		Messenger:       gateway,
		Inviter:         gateway,
		Answerer:        gateway,
		TargetChannelID: cfg.Intake.TargetChannelID,
		Logger:          baseLogger.With("component", "decisions"),
	})

	rt := router.New(baseLogger.With("component", "router"))
	rt.Command("start", intake.Greet)
	rt.Command("apply", intake.Begin)
	rt.Command("cancel", intake.Cancel)
	rt.Text(intake.Answer)
	rt.Callback(decisions.Handle)

	return &Application{cfg: cfg, logger: baseLogger, client: client, feed: feed, router: rt}
}

// Run validates the credential, starts polling, and blocks until ctx is
// cancelled.
func (a *Application) Run(ctx context.Context) error {
	me, err := a.client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("verify bot token: %w", err)
	}
	a.logger.Info("bot started", "username", me.Username, "id", me.ID)

	if err := a.feed.Start(ctx, a.router); err != nil {
		return fmt.Errorf("start update feed: %w", err)
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	return a.feed.Stop(stopCtx)
}
