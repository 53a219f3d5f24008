package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/quickkart/backend/logger"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logger.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetchSendsBrowserHeaders(t *testing.T) {
	assert := require.New(t)

	var gotPath string
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotHeaders = r.Header.Clone()
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(newTestLogger(), server.URL, time.Second)
	content, err := fetcher.Fetch(context.Background(), "gaming laptop")
	assert.NoError(err)
	assert.Equal("<html></html>", string(content))

	assert.Equal("/search?q=gaming+laptop", gotPath)
	assert.Contains(gotHeaders.Get("User-Agent"), "Mozilla/5.0")
	assert.NotEmpty(gotHeaders.Get("Accept"))
	assert.NotEmpty(gotHeaders.Get("Accept-Language"))
	assert.Equal("keep-alive", gotHeaders.Get("Connection"))
	assert.Equal("1", gotHeaders.Get("Upgrade-Insecure-Requests"))
}

func TestFetchNon2xxStatusIsAnError(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(newTestLogger(), server.URL, time.Second)
	_, err := fetcher.Fetch(context.Background(), "phone")
	assert.Error(err)
}

func TestFetchNetworkErrorIsAnError(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	fetcher := NewHTTPFetcher(newTestLogger(), server.URL, time.Second)
	_, err := fetcher.Fetch(context.Background(), "phone")
	assert.Error(err)
}

func TestFetchTimesOut(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(newTestLogger(), server.URL, 20*time.Millisecond)
	_, err := fetcher.Fetch(context.Background(), "phone")
	assert.Error(err)
}
