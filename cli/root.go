// Package cli implements the fact-cli command.
package cli

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/manas95826/fact-cli/config"
	"github.com/manas95826/fact-cli/delivery"
	"github.com/manas95826/fact-cli/facts"
	"github.com/manas95826/fact-cli/logging"
	"github.com/manas95826/fact-cli/scheduler"
)

// Version is set at build time with -ldflags "-X .../cli.Version=...".
var Version = "dev"

// Options holds the process dependencies of the command. Zero values use
// the real network, clock and Telegram API.
type Options struct {
	// Transport carries every outbound HTTP request.
	Transport http.RoundTripper

	// TelegramEndpoint is the Bot API URL format, "<base>/bot%s/%s".
	TelegramEndpoint string

	// Cadence drives the delivery loop cycles.
	Cadence delivery.Cadence
}

type flags struct {
	count      uint32
	category   string
	watch      bool
	telegram   bool
	configPath string
	logLevel   string
}

// NewRootCmd creates the top-level command.
func NewRootCmd(opts Options) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "fact-cli",
		Short: "A fun CLI tool that fetches random coding, AI, and scaling facts from APIs!",
		Long: "Get inspired with random facts about programming, artificial intelligence, and system scaling. " +
			"Can also send facts to Telegram every 6 hours!\n\n" + config.Describe(),
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, f)
		},
	}

	cmd.Flags().Uint32VarP(&f.count, "count", "c", 1, "Number of facts to display")
	cmd.Flags().StringVarP(&f.category, "category", "t", "all", "Category of facts: "+strings.Join(facts.CategoryValues(), ", "))
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Display facts continuously (press Ctrl+C to stop)")
	cmd.Flags().BoolVarP(&f.telegram, "telegram", "b", false, "Start Telegram bot mode (sends facts every 6 hours)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Optional YAML config file (default: $"+config.EnvConfigPath+")")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	err := cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return facts.CategoryValues(), cobra.ShellCompDirectiveNoFileComp
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(logging.NewTerminalHandler(cmd.ErrOrStderr(), lvl)), nil
}

func (o Options) cadence(logger *slog.Logger) delivery.Cadence {
	if o.Cadence != nil {
		return o.Cadence
	}
	return scheduler.New(logger)
}

func (o Options) httpClient() *http.Client {
	return &http.Client{Transport: o.Transport, Timeout: 30 * time.Second}
}

func (o Options) hosted(logger *slog.Logger) []facts.Source {
	sourceOpts := []facts.Option{facts.WithLogger(logger)}
	if o.Transport != nil {
		sourceOpts = append(sourceOpts, facts.WithTransport(o.Transport))
	}
	return facts.Hosted(sourceOpts...)
}
