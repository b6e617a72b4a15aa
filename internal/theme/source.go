package theme

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"tools.zach/dev/colorlit/internal/atomicfile"
	"tools.zach/dev/colorlit/internal/paths"
)

// maxThemeBytes caps remote theme downloads.
const maxThemeBytes = 1 << 20 // 1 MiB

// httpClient is a lazily-initialized retryablehttp client shared across all
// theme fetches. Initialized once via httpClientOnce.
var (
	httpClient     *retryablehttp.Client
	httpClientOnce sync.Once
)

// getHTTPClient returns the shared retryable HTTP client, initializing it on
// first call.
func getHTTPClient() *retryablehttp.Client {
	httpClientOnce.Do(func() {
		httpClient = retryablehttp.NewClient()
		httpClient.RetryMax = 2
		httpClient.HTTPClient.Timeout = 10 * time.Second
		httpClient.Logger = nil // suppress retryablehttp's default logging
	})
	return httpClient
}

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// SourceConfig describes where to load a theme from.
// Built from config.ThemeConfig at startup.
type SourceConfig struct {
	Source string // "file", "url"
	File   string // local path (for source = "file")
	URL    string // remote location (for source = "url")
}

// ///////////////////////////////////////////////
// Public API
// ///////////////////////////////////////////////

// Load reads the theme described by src.
//
// A "file" source is read directly. A "url" source is fetched and, on
// success, copied into cacheDir; when the fetch fails the cached copy is used
// instead. In that case both the cached theme and a non-nil error describing
// the failed fetch are returned. Returns nil with an error when no theme is
// available.
func Load(ctx context.Context, src SourceConfig, cacheDir string) (*Theme, error) {
	switch src.Source {
	case "file":
		return ReadFile(src.File)
	case "url":
		if src.URL == "" {
			return nil, fmt.Errorf("theme source is url but no url is configured")
		}
		return fetchWithFallback(cacheDir, func() ([]byte, error) {
			return fetchFromURL(ctx, src.URL)
		})
	default:
		return nil, fmt.Errorf("unknown theme source %q", src.Source)
	}
}

// ReadFile reads and parses a theme file.
func ReadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data)
}

// ///////////////////////////////////////////////
// Fallback Logic
// ///////////////////////////////////////////////

// fetchWithFallback attempts the primary fetch, then cache.
// Returns nil with an error when both sources fail.
func fetchWithFallback(cacheDir string, primary func() ([]byte, error)) (*Theme, error) {
	body, err := primary()
	if err == nil {
		var t *Theme
		t, err = Parse(body)
		if err == nil {
			if cacheErr := WriteCache(cacheDir, body); cacheErr != nil {
				slog.Warn("failed to write theme cache", "error", cacheErr)
			}
			return t, nil
		}
	}

	slog.Warn("failed to fetch theme from primary source, trying cache", "error", err)
	t, cacheErr := ReadCache(cacheDir)
	if cacheErr == nil {
		return t, fmt.Errorf("using cached theme: primary fetch failed: %w", err)
	}
	slog.Warn("no theme cache available", "error", cacheErr)
	return nil, fmt.Errorf("all theme sources failed: primary: %w; cache: %w", err, cacheErr)
}

// fetchFromURL downloads the raw theme document at url.
func fetchFromURL(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	resp, err := getHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxThemeBytes+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if int64(len(body)) > maxThemeBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, maxThemeBytes)
	}
	return body, nil
}

// ///////////////////////////////////////////////
// Cache
// ///////////////////////////////////////////////

// WriteCache stores a fetched theme document in cacheDir.
func WriteCache(cacheDir string, data []byte) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("creating theme cache directory: %w", err)
	}
	return atomicfile.Write(paths.DataDir{Root: cacheDir}.ThemeCache(), data, 0o644)
}

// ReadCache parses the cached theme in cacheDir.
func ReadCache(cacheDir string) (*Theme, error) {
	data, err := os.ReadFile(paths.DataDir{Root: cacheDir}.ThemeCache())
	if err != nil {
		return nil, fmt.Errorf("reading theme cache: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing theme cache: %w", err)
	}
	return t, nil
}
