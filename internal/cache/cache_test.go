package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jetify.com/go2web/internal/envir"
)

func TestKey(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "url-characters-replaced",
			input:    "https://example.com/a?q=1",
			expected: "https___example_com_a_q_1",
		},
		{
			name:     "alphanumeric-unchanged",
			input:    "abcXYZ019",
			expected: "abcXYZ019",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := Key(testCase.input); got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}

	t.Run("truncated-to-255", func(t *testing.T) {
		long := strings.Repeat("a", 300)
		if got := Key(long); len(got) != 255 {
			t.Errorf("expected 255 chars, got %d", len(got))
		}
	})
}

func TestCacheRoundTrip(t *testing.T) {
	c := &Cache{Dir: t.TempDir(), TTL: time.Hour}

	url := "https://example.com/page"
	entry := &Entry{
		Status:     "200 OK",
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "text/html"},
		Body:       "<html></html>",
	}
	require.NoError(t, c.Put(url, entry))

	got, ok := c.Get(url)
	require.True(t, ok)
	assert.Equal(t, 200, got.StatusCode)
	assert.Equal(t, "200 OK", got.Status)
	assert.Equal(t, "text/html", got.Headers["Content-Type"])
	assert.Equal(t, "<html></html>", got.Body)
	assert.NotZero(t, got.Timestamp)

	_, ok = c.Get("https://example.com/other")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := &Cache{Dir: t.TempDir(), TTL: time.Hour}

	url := "https://example.com/stale"
	entry := &Entry{
		Timestamp:  time.Now().Add(-2 * time.Hour).Unix(),
		StatusCode: 200,
		Body:       "old",
	}
	require.NoError(t, c.Put(url, entry))

	_, ok := c.Get(url)
	assert.False(t, ok)
	// expired entries are deleted, not just skipped
	assert.NoFileExists(t, filepath.Join(c.Dir, Key(url)))
}

func TestCacheCorruptEntry(t *testing.T) {
	c := &Cache{Dir: t.TempDir(), TTL: time.Hour}

	url := "https://example.com/corrupt"
	path := filepath.Join(c.Dir, Key(url))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := c.Get(url)
	assert.False(t, ok)
	assert.NoFileExists(t, path)
}

func TestCacheClean(t *testing.T) {
	c := &Cache{Dir: t.TempDir(), TTL: time.Hour}
	require.NoError(t, c.Put("https://example.com/a", &Entry{StatusCode: 200}))
	require.NoError(t, c.Put("https://example.com/b", &Entry{StatusCode: 200}))

	require.NoError(t, c.Clean())

	entries, err := os.ReadDir(c.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// cleaning a missing directory is not an error
	c = &Cache{Dir: filepath.Join(t.TempDir(), "does-not-exist"), TTL: time.Hour}
	assert.NoError(t, c.Clean())
}

func TestDefaultHonorsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envir.Go2webCacheDir, dir)
	assert.Equal(t, dir, Default().Dir)
}
