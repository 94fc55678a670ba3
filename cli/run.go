package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/manas95826/fact-cli/bot"
	"github.com/manas95826/fact-cli/config"
	"github.com/manas95826/fact-cli/delivery"
	"github.com/manas95826/fact-cli/display"
	"github.com/manas95826/fact-cli/facts"
)

func run(cmd *cobra.Command, opts Options, f *flags) error {
	ctx := cmd.Context()

	logger, err := newLogger(cmd, f.logLevel)
	if err != nil {
		return err
	}

	category, err := facts.ParseCategory(f.category)
	if err != nil {
		return err
	}

	if f.telegram {
		return runBot(ctx, cmd.OutOrStdout(), opts, logger, f, category)
	}

	selector := facts.NewSelector(opts.hosted(logger), logger)
	if f.watch {
		return runWatch(ctx, cmd.OutOrStdout(), cmd.InOrStdin(), selector, logger, category, f.count)
	}
	runBatch(ctx, cmd.OutOrStdout(), selector, logger, category, f.count)
	return nil
}

// runBatch prints count facts and stops at the first fetch error. Errors
// caused by ctx being done are not logged.
func runBatch(ctx context.Context, out io.Writer, fetcher delivery.FactFetcher, logger *slog.Logger, category facts.Category, count uint32) {
	for i := uint32(1); i <= count; i++ {
		fact, err := fetcher.Fetch(ctx, category)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("failed to fetch fact", "category", category, "index", i, "error", err)
			}
			return
		}
		if err := display.Print(out, fact, category, i); err != nil {
			logger.Error("failed to print fact", "error", err)
			return
		}
	}
}

func runWatch(ctx context.Context, out io.Writer, in io.Reader, fetcher delivery.FactFetcher, logger *slog.Logger, category facts.Category, count uint32) error {
	fmt.Fprintln(out, display.Banner("🔄 Watch mode enabled! Press Ctrl+C to stop.", color.FgHiGreen, color.Bold))

	lines := readLines(in)
	for {
		runBatch(ctx, out, fetcher, logger, category, count)

		fmt.Fprint(out, display.Banner("Press Enter for next batch or Ctrl+C to exit... ", color.FgHiCyan))
		if err := waitForLine(ctx, lines); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// readLines reads r line by line in one goroutine and reports each read on
// the returned channel. It stops after the first read error. A read blocked
// on r when the caller gives up stays blocked until the process exits.
func readLines(r io.Reader) <-chan error {
	lines := make(chan error, 1)
	go func() {
		br := bufio.NewReader(r)
		for {
			_, err := br.ReadString('\n')
			lines <- err
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// waitForLine blocks until the next line is read or ctx is done.
func waitForLine(ctx context.Context, lines <-chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-lines:
		return err
	}
}

func runBot(ctx context.Context, out io.Writer, opts Options, logger *slog.Logger, f *flags, category facts.Category) error {
	path := f.configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	sender := bot.New(cfg.TelegramToken, opts.TelegramEndpoint, opts.httpClient())
	if name, err := sender.Identify(); err != nil {
		logger.Warn("telegram unreachable at startup, continuing", "error", err)
	} else {
		logger.Info("telegram bot connected", "username", name)
	}

	fmt.Fprintln(out, display.Banner("🤖 Telegram bot started! Sending facts every 6 hours...", color.FgHiGreen, color.Bold))
	fmt.Fprintln(out, display.Banner("Press Ctrl+C to stop.", color.FgHiYellow))

	selector := facts.NewSelector(opts.hosted(logger), logger)
	loop := delivery.NewLoop(selector, sender, opts.cadence(logger), logger, category, cfg.ChatID)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("delivery loop failed: %w", err)
	}
	return nil
}
