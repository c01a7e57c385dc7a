// Package pogoapi is the adapter for the public Pokémon Go stats API. A
// Session fetches raw named datasets lazily, normalizes each into an
// id-keyed table, and joins them into resolved records. Dataset tables live
// only for the session's lifetime; there is no package-level state, so
// sessions in tests never contaminate each other.
package pogoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultBaseURL points at the public stats API.
const DefaultBaseURL = "https://pogoapi.net/api/v1"

// DefaultTimeout bounds a single dataset fetch.
const DefaultTimeout = 30 * time.Second

// datasetCacheSize covers every endpoint the session can fetch.
const datasetCacheSize = 16

// Config carries the knobs for constructing a Session.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client, used by tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Session is a scoped adapter instance. Close releases the underlying
// network client; a Session must not be used after Close.
type Session struct {
	baseURL  string
	client   *http.Client
	log      *slog.Logger
	datasets *lru.Cache // endpoint -> normalized table
}

// NewSession builds a Session from config, applying defaults for anything
// unset.
func NewSession(cfg Config) (*Session, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	cache, err := lru.New(datasetCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating dataset cache: %w", err)
	}

	return &Session{baseURL: baseURL, client: client, log: log, datasets: cache}, nil
}

// Close releases the session's network resources.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
}

// fetchJSON downloads one dataset endpoint and decodes it into v.
func (s *Session) fetchJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("fetching %s: status %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", endpoint, err)
	}
	return nil
}

// dataset returns the normalized table for endpoint, fetching and
// normalizing it at most once per session. A failed fetch degrades to the
// zero table produced by normalize(nil applied to a failed load) and is
// cached so the endpoint is not hammered again this session.
func dataset[T any](ctx context.Context, s *Session, endpoint string, load func(context.Context) (T, error)) T {
	if cached, ok := s.datasets.Get(endpoint); ok {
		return cached.(T)
	}

	table, err := load(ctx)
	if err != nil {
		s.log.Warn("dataset unavailable, using empty table", "endpoint", endpoint, "error", err)
	}
	s.datasets.Add(endpoint, table)
	return table
}
