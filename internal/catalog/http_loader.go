package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// httpLoader implements Loader by fetching the dataset document over
// HTTP. The fetch happens once per process; retries are pointless here
// because a failure simply resolves into the fallback dataset.
type httpLoader struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPLoader creates an HTTP-based catalogue loader.
func NewHTTPLoader(url string, logger zerolog.Logger) Loader {
	return &httpLoader{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.With().Str("component", "catalog-http-loader").Logger(),
	}
}

// Load fetches and parses the dataset document.
func (l *httpLoader) Load(ctx context.Context) (*model.Dataset, error) {
	l.logger.Info().Str("url", l.url).Msg("fetching catalogue")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalogue request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Error().Err(err).Str("url", l.url).Msg("catalogue fetch failed")
		return nil, fmt.Errorf("failed to fetch catalogue from %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.logger.Error().Int("status", resp.StatusCode).Str("url", l.url).Msg("catalogue fetch returned non-OK status")
		return nil, fmt.Errorf("catalogue fetch returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue response: %w", err)
	}

	var dataset model.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		l.logger.Error().Err(err).Str("url", l.url).Msg("failed to parse catalogue response")
		return nil, fmt.Errorf("failed to parse catalogue response: %w", err)
	}

	l.logger.Info().
		Str("url", l.url).
		Int("products", len(dataset.Products)).
		Int("collections", len(dataset.Collections)).
		Msg("catalogue fetched successfully")

	return &dataset, nil
}
