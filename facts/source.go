package facts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single hosted source request.
const DefaultTimeout = 10 * time.Second

// ErrSourceUnavailable is returned by every failing source. The cause is
// only logged.
var ErrSourceUnavailable = errors.New("source unavailable")

// Source produces one fact per call.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

// HTTPSource reads one string field from a JSON endpoint.
type HTTPSource struct {
	name       string
	url        string
	field      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures an HTTPSource.
type Option func(*HTTPSource)

// WithURL replaces the endpoint URL (for testing).
func WithURL(url string) Option {
	return func(s *HTTPSource) {
		s.url = url
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSource) {
		s.httpClient.Timeout = d
	}
}

// WithTransport sets the round tripper used for requests.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *HTTPSource) {
		s.httpClient.Transport = rt
	}
}

// WithLogger sets the logger that receives failure causes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *HTTPSource) {
		s.logger = logger
	}
}

// NewHTTPSource creates a source for url that returns the JSON string field.
func NewHTTPSource(name, url, field string, opts ...Option) *HTTPSource {
	s := &HTTPSource{
		name:       name,
		url:        url,
		field:      field,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the source in logs.
func (s *HTTPSource) Name() string {
	return s.name
}

// Fetch performs one GET and returns the configured field verbatim.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	fact, err := s.fetch(ctx)
	if err != nil {
		s.logger.Debug("source request failed", "source", s.name, "url", s.url, "error", err)
		return "", ErrSourceUnavailable
	}
	return fact, nil
}

func (s *HTTPSource) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", s.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	raw, ok := body[s.field]
	if !ok {
		return "", fmt.Errorf("field %q missing", s.field)
	}
	var fact string
	if err := json.Unmarshal(raw, &fact); err != nil {
		return "", fmt.Errorf("decode field %q: %w", s.field, err)
	}
	return fact, nil
}

// TableSource picks a uniformly random entry from a fixed table.
type TableSource struct {
	name  string
	table []string
	pick  func(n int) int
}

// NewTableSource wraps table. The table must not be empty.
func NewTableSource(name string, table []string) *TableSource {
	return &TableSource{name: name, table: table, pick: rand.IntN}
}

// Name identifies the table in logs.
func (s *TableSource) Name() string {
	return s.name
}

// Fetch never performs I/O.
func (s *TableSource) Fetch(ctx context.Context) (string, error) {
	if len(s.table) == 0 {
		return "", fmt.Errorf("table %s is empty", s.name)
	}
	return s.table[s.pick(len(s.table))], nil
}

// Hosted returns the public sources in fallback order.
func Hosted(opts ...Option) []Source {
	return []Source{
		NewHTTPSource("useless-facts", "https://uselessfacts.jsph.pl/random.json?language=en", "text", opts...),
		NewHTTPSource("chuck-norris", "https://api.chucknorris.io/jokes/random", "value", opts...),
		NewHTTPSource("cat-facts", "https://cat-fact.herokuapp.com/facts/random", "text", opts...),
	}
}
