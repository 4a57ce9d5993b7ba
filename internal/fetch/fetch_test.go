// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/reading-notes/pkg/types"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.org/paper.pdf"))
	assert.True(t, IsURL("http://example.org/paper.pdf"))
	assert.False(t, IsURL("papers/paper.pdf"))
	assert.False(t, IsURL("/abs/paper.pdf"))
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.org/papers/attention.pdf", "attention.pdf"},
		{"https://example.org/abs/2301.07041", "2301.07041.pdf"},
		{"https://example.org/", "download.pdf"},
		{"https://example.org", "download.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, localName(tt.in), "localName(%q)", tt.in)
	}
}

func TestDownload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		assert.Equal(t, "reading-notes-test/0.1", r.Header.Get("User-Agent"))
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "reading-notes-test/0.1"},
	}

	var log bytes.Buffer
	got, err := Download(context.Background(), ts.Client(), ts.URL+"/paper.pdf", dir, cfg, &log)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "paper.pdf"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(data))
	assert.Contains(t, log.String(), "downloaded: paper.pdf")

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDownload_SkipsExisting(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte("fresh"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	existing := filepath.Join(dir, "paper.pdf")
	require.NoError(t, os.WriteFile(existing, []byte("cached"), 0o644))

	var log bytes.Buffer
	got, err := Download(context.Background(), ts.Client(), ts.URL+"/paper.pdf", dir, types.FetchConfig{}, &log)
	require.NoError(t, err)
	assert.Equal(t, existing, got)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.Contains(t, log.String(), "skipped:")
}

func TestDownload_RetriesOn429(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("%PDF"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	var log bytes.Buffer
	_, err := Download(context.Background(), ts.Client(), ts.URL+"/x.pdf", dir, types.FetchConfig{MaxRetries: 5}, &log)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDownload_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	var log bytes.Buffer
	_, err := Download(context.Background(), ts.Client(), ts.URL+"/gone.pdf", t.TempDir(), types.FetchConfig{}, &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestDoWithRetry_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	// Force a long backoff, then cancel during the wait.
	old := RetryBaseDelay
	RetryBaseDelay = time.Hour
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = doWithRetry(ctx, ts.Client(), req, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
