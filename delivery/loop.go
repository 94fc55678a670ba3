// Package delivery relays facts to a Telegram chat on a fixed interval.
package delivery

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/manas95826/fact-cli/bot"
	"github.com/manas95826/fact-cli/facts"
)

// Interval between two delivery cycles.
const Interval = 6 * time.Hour

// FactFetcher returns one fact for a category.
type FactFetcher interface {
	Fetch(ctx context.Context, category facts.Category) (string, error)
}

// Cadence runs job immediately and then every d until ctx is done.
type Cadence interface {
	Every(ctx context.Context, d time.Duration, job func(context.Context)) error
}

// Loop runs fetch, send and wait cycles for a fixed category and chat.
type Loop struct {
	fetcher  FactFetcher
	sender   bot.Sender
	cadence  Cadence
	logger   *slog.Logger
	category facts.Category
	chatID   int64
}

// NewLoop creates a delivery loop.
func NewLoop(fetcher FactFetcher, sender bot.Sender, cadence Cadence, logger *slog.Logger, category facts.Category, chatID int64) *Loop {
	return &Loop{
		fetcher:  fetcher,
		sender:   sender,
		cadence:  cadence,
		logger:   logger,
		category: category,
		chatID:   chatID,
	}
}

// Run delivers one fact now and then one per Interval until ctx is done.
// It returns the cadence error, ctx.Err() on shutdown.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("delivery loop started",
		"category", l.category,
		"chat_id", l.chatID,
		"interval", Interval)

	err := l.cadence.Every(ctx, Interval, l.RunOnce)
	l.logger.Info("delivery loop stopped")
	return err
}

// RunOnce fetches one fact and sends it. Failures are logged, never returned.
func (l *Loop) RunOnce(ctx context.Context) {
	logger := l.logger.With("cycle_id", ulid.MustNew(ulid.Now(), rand.Reader).String())

	fact, err := l.fetcher.Fetch(ctx, l.category)
	if err != nil {
		logger.Error("failed to fetch fact", "category", l.category, "error", err)
		return
	}
	logger.Info("fetched new fact", "category", l.category)

	msgID, err := l.sender.SendText(ctx, l.chatID, bot.FormatMessage(l.category, fact))
	if err != nil {
		logger.Error("failed to send fact to telegram", "chat_id", l.chatID, "error", err)
		return
	}
	logger.Info("fact sent to telegram", "chat_id", l.chatID, "message_id", msgID, "next_in", Interval)
}
