package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quickkart/backend/logger"
)

const (
	defaultFetchTimeout = 10 * time.Second
	searchPath          = "/search?q="
)

// Fetcher retrieves raw search-result markup for a query. An error means
// the page could not be fetched; callers decide how to degrade.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]byte, error)
}

// HTTPFetcher issues a single GET against the storefront's search path with
// browser-like headers. The target serves blocked or stripped markup to
// clients that do not look like a desktop browser.
type HTTPFetcher struct {
	client  *http.Client
	baseURL string
	headers map[string]string
	logger  logger.Logger
}

func NewHTTPFetcher(log logger.Logger, baseURL string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &HTTPFetcher{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		headers: browserHeaders(),
		logger:  log,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, query string) ([]byte, error) {
	searchURL := f.baseURL + searchPath + strings.ReplaceAll(query, " ", "+")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("search page request failed", "url", searchURL, "err", err.Error())
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		f.logger.Warn("search page returned non-2xx status", "url", searchURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status %d fetching search page", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Warn("failed to read search page body", "url", searchURL, "err", err.Error())
		return nil, fmt.Errorf("failed to read search page body: %w", err)
	}

	return content, nil
}

func browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Accept-Encoding":           "gzip, deflate",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}
}
