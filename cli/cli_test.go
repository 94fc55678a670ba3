package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manas95826/fact-cli/config"
	"github.com/manas95826/fact-cli/facts"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var hostedHosts = map[string]bool{
	"uselessfacts.jsph.pl":   true,
	"api.chucknorris.io":     true,
	"cat-fact.herokuapp.com": true,
}

// countingTransport answers hosted fact APIs itself and forwards anything
// else (the fake Telegram server) to the default transport.
type countingTransport struct {
	mu       sync.Mutex
	requests []string
	hosted   func(r *http.Request) *http.Response
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, r.URL.Host+r.URL.Path)
	c.mu.Unlock()

	if hostedHosts[r.URL.Hostname()] {
		return c.hosted(r), nil
	}
	return http.DefaultTransport.RoundTrip(r)
}

func (c *countingTransport) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func respond(r *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

func failingHosted(r *http.Request) *http.Response {
	return respond(r, http.StatusServiceUnavailable, "")
}

// stopCadence runs the job once and reports shutdown.
type stopCadence struct {
	every []time.Duration
}

func (s *stopCadence) Every(ctx context.Context, d time.Duration, job func(context.Context)) error {
	s.every = append(s.every, d)
	job(ctx)
	return context.Canceled
}

type telegramServer struct {
	mu   sync.Mutex
	sent []string
	chat []string
}

func newTelegramServer(t *testing.T) (*telegramServer, string) {
	t.Helper()
	tg := &telegramServer{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Facts","username":"fact_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			tg.mu.Lock()
			tg.sent = append(tg.sent, r.Form.Get("text"))
			tg.chat = append(tg.chat, r.Form.Get("chat_id"))
			tg.mu.Unlock()
			w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`))
		default:
			t.Errorf("unexpected telegram path: %s", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)
	return tg, server.URL + "/bot%s/%s"
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvBotToken, config.EnvChatID, config.EnvConfigPath} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func execute(t *testing.T, opts Options, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd(opts)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func factLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "│ ") && !strings.HasPrefix(line, "│ #") {
			lines = append(lines, strings.TrimPrefix(line, "│ "))
		}
	}
	return lines
}

func TestBatchAICategory(t *testing.T) {
	transport := &countingTransport{hosted: failingHosted}

	out, _, err := execute(t, Options{Transport: transport}, "", "--count", "3", "--category", "ai")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "┌─ 🤖 AI Fact"))
	assert.NotContains(t, out, "│ #1")
	assert.Contains(t, out, "│ #2")
	assert.Contains(t, out, "│ #3")
	assert.NotContains(t, out, "│ #4")

	lines := factLines(out)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Contains(t, facts.AIFacts, line)
	}
	assert.Zero(t, transport.count(), "no network calls for local categories")
}

func TestBatchDefaultsToOneRandomFact(t *testing.T) {
	transport := &countingTransport{hosted: func(r *http.Request) *http.Response {
		return respond(r, http.StatusOK, `{"id":"1","text":"Honey never spoils."}`)
	}}

	out, _, err := execute(t, Options{Transport: transport}, "")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "┌─ 🌟 Random Fact"))
	assert.Equal(t, []string{"Honey never spoils."}, factLines(out))
	assert.Equal(t, []string{"uselessfacts.jsph.pl/random.json"}, transport.requests)
}

func TestBatchAllFallsThroughChain(t *testing.T) {
	transport := &countingTransport{hosted: func(r *http.Request) *http.Response {
		if r.URL.Hostname() == "cat-fact.herokuapp.com" {
			return respond(r, http.StatusOK, `{"text":"Cats sleep 70% of their lives."}`)
		}
		return failingHosted(r)
	}}

	out, _, err := execute(t, Options{Transport: transport}, "", "-t", "all")
	require.NoError(t, err)

	assert.Equal(t, []string{"Cats sleep 70% of their lives."}, factLines(out))
	assert.Equal(t, 3, transport.count())
}

func TestInvalidCategory(t *testing.T) {
	_, _, err := execute(t, Options{}, "", "--category", "cats")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, Options{}, "", "--log-level", "loud")
	assert.Error(t, err)
}

func TestWatchRepeatsUntilEndOfInput(t *testing.T) {
	transport := &countingTransport{hosted: failingHosted}

	out, _, err := execute(t, Options{Transport: transport}, "\n", "--watch", "--count", "2", "--category", "tech")
	require.NoError(t, err)

	assert.Contains(t, out, "Watch mode enabled")
	assert.Equal(t, 4, strings.Count(out, "┌─ ⚡ Tech Fact"))
	assert.Equal(t, 2, strings.Count(out, "Press Enter for next batch or Ctrl+C to exit..."))
	for _, line := range factLines(out) {
		assert.Contains(t, facts.TechFacts, line)
	}
	assert.Zero(t, transport.count())
}

func TestTelegramMissingConfigMakesNoRequests(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"no token", map[string]string{config.EnvChatID: "42"}, "TELEGRAM_BOT_TOKEN"},
		{"no chat id", map[string]string{config.EnvBotToken: "123:abc"}, "TELEGRAM_CHAT_ID"},
		{"bad chat id", map[string]string{config.EnvBotToken: "123:abc", config.EnvChatID: "@channel"}, "not a valid chat id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			transport := &countingTransport{hosted: failingHosted}
			cadence := &stopCadence{}

			_, _, err := execute(t, Options{Transport: transport, Cadence: cadence}, "", "--telegram")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration error")
			assert.Contains(t, err.Error(), tt.want)
			assert.Zero(t, transport.count())
			assert.Empty(t, cadence.every)
		})
	}
}

func TestTelegramSendsTechFactWhenHostedSourcesFail(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvBotToken, "123:abc")
	t.Setenv(config.EnvChatID, "-1009876")

	tg, endpoint := newTelegramServer(t)
	transport := &countingTransport{hosted: failingHosted}
	cadence := &stopCadence{}

	out, _, err := execute(t, Options{
		Transport:        transport,
		TelegramEndpoint: endpoint,
		Cadence:          cadence,
	}, "", "--telegram", "--watch", "--count", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Telegram bot started")
	require.Len(t, tg.sent, 1)
	assert.Equal(t, []string{"-1009876"}, tg.chat)

	const prefix = "🌟 Random Random Fact\n\n"
	require.True(t, strings.HasPrefix(tg.sent[0], prefix), tg.sent[0])
	assert.Contains(t, facts.TechFacts, strings.TrimPrefix(tg.sent[0], prefix))
	assert.Equal(t, []time.Duration{6 * time.Hour}, cadence.every)
	assert.NotContains(t, out, "┌─", "display flags are ignored in bot mode")
}

func TestTelegramUsesConfigFile(t *testing.T) {
	clearEnv(t)
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("telegram_token: \"123:abc\"\ntelegram_chat_id: \"5\"\n"), 0644))

	tg, endpoint := newTelegramServer(t)
	_, _, err := execute(t, Options{
		Transport:        &countingTransport{hosted: failingHosted},
		TelegramEndpoint: endpoint,
		Cadence:          &stopCadence{},
	}, "", "--telegram", "--category", "scaling", "--config", path)
	require.NoError(t, err)

	require.Len(t, tg.sent, 1)
	assert.Equal(t, []string{"5"}, tg.chat)
	assert.True(t, strings.HasPrefix(tg.sent[0], "📈 Scaling Random Fact\n\n"))
}

func TestTelegramKeepsRunningWhenTelegramUnavailable(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvBotToken, "123:abc")
	t.Setenv(config.EnvChatID, "42")

	var calls int
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	cadence := &stopCadence{}
	var logs bytes.Buffer
	cmd := NewRootCmd(Options{
		Transport:        &countingTransport{hosted: failingHosted},
		TelegramEndpoint: server.URL + "/bot%s/%s",
		Cadence:          cadence,
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(&logs)
	cmd.SetArgs([]string{"--telegram", "--category", "ai"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, []time.Duration{6 * time.Hour}, cadence.every)
	assert.Equal(t, 2, calls, "getMe and one sendMessage")
	assert.Contains(t, logs.String(), "telegram unreachable at startup")
	assert.Contains(t, logs.String(), "failed to send fact to telegram")
}

func TestCategoryCompletion(t *testing.T) {
	out, _, err := execute(t, Options{}, "", "__complete", "--category", "")
	require.NoError(t, err)
	for _, value := range facts.CategoryValues() {
		assert.Contains(t, out, value+"\n")
	}
	assert.Contains(t, out, ":4")
}

func TestRunBatchCancelledIsQuiet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	runBatch(ctx, &out, errFetcher{}, logger, facts.All, 3)

	assert.Empty(t, out.String())
	assert.Empty(t, logs.String())
}

func TestRunBatchLogsFetchError(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	runBatch(context.Background(), &out, errFetcher{}, logger, facts.All, 3)

	assert.Empty(t, out.String())
	assert.Equal(t, 1, strings.Count(logs.String(), "failed to fetch fact"))
}

// errFetcher fails with the context error when there is one.
type errFetcher struct{}

func (errFetcher) Fetch(ctx context.Context, category facts.Category) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", errors.New("no sources")
}

func TestWaitForLine(t *testing.T) {
	lines := readLines(strings.NewReader("first\nsecond\n"))

	assert.NoError(t, waitForLine(context.Background(), lines))
	assert.NoError(t, waitForLine(context.Background(), lines))
	assert.ErrorIs(t, waitForLine(context.Background(), lines), io.EOF)
}

func TestWaitForLineCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, waitForLine(ctx, readLines(r)), context.Canceled)
}

func TestHelpListsEnvironment(t *testing.T) {
	out, _, err := execute(t, Options{}, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--category")
	assert.Contains(t, out, "--telegram")
	assert.Contains(t, out, config.EnvBotToken)
}
