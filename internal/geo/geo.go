// Package geo fetches the US-state boundary GeoJSON used by the
// choropleth and caches it on disk so the dashboard stays buildable
// offline after the first run.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	fetchTimeout = 15 * time.Second
	maxBodySize  = 20 << 20
	cacheFile    = "us-states.geojson"
)

type Fetcher struct {
	url      string
	cacheDir string
	client   *http.Client
	logger   *slog.Logger
}

func NewFetcher(url, cacheDir string) *Fetcher {
	return &Fetcher{
		url:      url,
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: fetchTimeout},
		logger:   slog.Default(),
	}
}

// Boundaries returns the GeoJSON body, preferring the disk cache.
// Callers treat a failure as non-fatal: the choropleth degrades to
// Plotly's built-in state outlines.
func (f *Fetcher) Boundaries(ctx context.Context) ([]byte, error) {
	cachePath := filepath.Join(f.cacheDir, cacheFile)

	if body, err := os.ReadFile(cachePath); err == nil && json.Valid(body) {
		return body, nil
	}

	body, err := f.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := f.writeCache(cachePath, body); err != nil {
		f.logger.Warn("failed to cache geojson", "path", cachePath, "error", err)
	}
	return body, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build geojson request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch geojson: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch geojson: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read geojson body: %w", err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("geojson response is not valid JSON")
	}
	return body, nil
}

func (f *Fetcher) writeCache(path string, body []byte) error {
	if err := os.MkdirAll(f.cacheDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, body, 0644)
}
