package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const testGeoJSON = `{"type":"FeatureCollection","features":[]}`

func TestBoundaries_FetchAndCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(testGeoJSON))
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	f := NewFetcher(server.URL, cacheDir)

	body, err := f.Boundaries(context.Background())
	if err != nil {
		t.Fatalf("Boundaries() failed: %v", err)
	}
	if string(body) != testGeoJSON {
		t.Errorf("unexpected body: %s", body)
	}
	if hits != 1 {
		t.Errorf("expected 1 fetch, got %d", hits)
	}

	if _, err := os.Stat(filepath.Join(cacheDir, cacheFile)); err != nil {
		t.Errorf("expected cache file: %v", err)
	}

	// Second call is served from disk.
	if _, err := f.Boundaries(context.Background()); err != nil {
		t.Fatalf("cached Boundaries() failed: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected cache hit, got %d fetches", hits)
	}
}

func TestBoundaries_InvalidCacheRefetches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testGeoJSON))
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(cacheDir, cacheFile), []byte("not json{"), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(server.URL, cacheDir)
	body, err := f.Boundaries(context.Background())
	if err != nil {
		t.Fatalf("Boundaries() failed: %v", err)
	}
	if string(body) != testGeoJSON {
		t.Errorf("expected refetched body, got %s", body)
	}
}

func TestBoundaries_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcher(server.URL, t.TempDir())
	if _, err := f.Boundaries(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestBoundaries_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not geojson</html>"))
	}))
	defer server.Close()

	f := NewFetcher(server.URL, t.TempDir())
	if _, err := f.Boundaries(context.Background()); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

func TestBoundaries_Unreachable(t *testing.T) {
	f := NewFetcher("http://127.0.0.1:1/geojson", t.TempDir())
	if _, err := f.Boundaries(context.Background()); err == nil {
		t.Error("expected error for unreachable host")
	}
}
