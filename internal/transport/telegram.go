// Package transport runs the Telegram long-polling loop and bridges inbound
// messages to the dispatcher.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dimasfh/profitbot/internal/handlers"
	"github.com/google/uuid"
	tgbotapi "gopkg.in/telegram-bot-api.v4"
)

// Bot consumes Telegram updates one at a time; each message is handled to
// completion under its own timeout context before the next is read.
type Bot struct {
	api          *tgbotapi.BotAPI
	dispatcher   *handlers.Dispatcher
	logger       *slog.Logger
	storeTimeout time.Duration
	pollTimeout  int
}

func New(token string, dispatcher *handlers.Dispatcher, logger *slog.Logger, storeTimeout time.Duration, pollTimeout int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize bot: %w", err)
	}
	logger.Info("Telegram bot authorized", slog.String("username", api.Self.UserName))

	return &Bot{
		api:          api,
		dispatcher:   dispatcher,
		logger:       logger,
		storeTimeout: storeTimeout,
		pollTimeout:  pollTimeout,
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return fmt.Errorf("failed to open update channel: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(parent context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	reqLogger := b.logger.With(
		slog.String("request_id", uuid.NewString()),
		slog.Int64("chat_id", msg.Chat.ID),
	)

	userName := ""
	if msg.From != nil {
		userName = msg.From.FirstName
	}

	ctx, cancel := context.WithTimeout(parent, b.storeTimeout)
	defer cancel()

	start := time.Now()
	reply, ok := b.dispatcher.Dispatch(ctx, msg.Chat.ID, userName, msg.Text)
	if !ok {
		// Not addressed to the bot; stay silent.
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		reqLogger.Error("Failed to send reply", slog.String("error", err.Error()))
		return
	}
	reqLogger.Info("Message handled", slog.Duration("latency", time.Since(start)))
}
