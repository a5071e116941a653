package web

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jetify.com/go2web/internal/cache"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "identity", r.Header.Get("Accept-Encoding"))
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body>hello</body></html>")
	}))
	defer server.Close()

	client := &Client{Timeout: 5 * time.Second}
	resp, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Body, "hello")
}

func TestFetchTLS(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "secure")
	}))
	defer server.Close()

	// The client skips certificate verification, so the self-signed test
	// certificate is accepted.
	client := &Client{Timeout: 5 * time.Second}
	resp, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "secure", resp.Body)
}

func TestFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/next", http.StatusFound)
	})
	mux.HandleFunc("/next", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "made it")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	stderr := new(bytes.Buffer)
	client := &Client{Timeout: 5 * time.Second, Stderr: stderr}
	resp, err := client.Fetch(context.Background(), server.URL+"/start")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "made it", resp.Body)
	assert.Contains(t, stderr.String(), "Redirecting to:")
}

func TestFetchRedirectLoop(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/b", http.StatusFound)
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/a", http.StatusFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := &Client{Timeout: 5 * time.Second}
	_, err := client.Fetch(context.Background(), server.URL+"/a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect loop detected")
}

func TestFetchTooManyRedirects(t *testing.T) {
	var hops atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, fmt.Sprintf("/hop/%d", hops.Add(1)), http.StatusFound)
	}))
	defer server.Close()

	client := &Client{Timeout: 5 * time.Second, MaxRedirects: 3}
	_, err := client.Fetch(context.Background(), server.URL+"/hop/0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 3 redirects")
}

func TestFetchUsesCache(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, "fresh")
	}))
	defer server.Close()

	stderr := new(bytes.Buffer)
	client := &Client{
		Timeout: 5 * time.Second,
		Cache:   &cache.Cache{Dir: t.TempDir(), TTL: time.Hour},
		Stderr:  stderr,
	}

	resp, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Body)
	require.Equal(t, int64(1), requests.Load())

	resp, err = client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	// served from cache, not the server
	assert.Equal(t, int64(1), requests.Load())
	assert.Contains(t, stderr.String(), "Using cached response")
}

func TestFetchConnectionRefused(t *testing.T) {
	// grab a port that nothing is listening on
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := &Client{Timeout: 2 * time.Second}
	_, err := client.Fetch(context.Background(), url)
	assert.Error(t, err)
}
