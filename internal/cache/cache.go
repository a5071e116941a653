// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package cache stores fetched responses as one JSON file per URL, evicting
// entries once they are older than the TTL.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pkg/errors"

	"go.jetify.com/go2web/internal/debug"
	"go.jetify.com/go2web/internal/envir"
	"go.jetify.com/go2web/internal/fileutil"
	"go.jetify.com/go2web/internal/xdg"
)

const DefaultTTL = time.Hour

type Entry struct {
	Timestamp  int64             `json:"timestamp"`
	Status     string            `json:"status"`
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type Cache struct {
	Dir string
	TTL time.Duration
}

// Default returns the cache under the XDG cache directory, overridable with
// GO2WEB_CACHE_DIR.
func Default() *Cache {
	return &Cache{
		Dir: envir.GetValueOrDefault(envir.Go2webCacheDir, xdg.CacheSubpath("go2web")),
		TTL: DefaultTTL,
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Key converts a URL into a filesystem-safe cache file name.
func Key(url string) string {
	key := nonAlphanumeric.ReplaceAllString(url, "_")
	if len(key) > 255 {
		key = key[:255]
	}
	return key
}

// Get returns the cached entry for url. Unreadable and expired entries are
// removed and reported as misses.
func (c *Cache) Get(url string) (*Entry, bool) {
	path := filepath.Join(c.Dir, Key(url))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	entry := &Entry{}
	if err := json.Unmarshal(data, entry); err != nil {
		debug.Log("removing unreadable cache entry %s: %v", path, err)
		_ = os.Remove(path)
		return nil, false
	}
	if time.Since(time.Unix(entry.Timestamp, 0)) > c.TTL {
		_ = os.Remove(path)
		return nil, false
	}
	return entry, true
}

func (c *Cache) Put(url string, entry *Entry) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return errors.WithStack(err)
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().Unix()
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.WithStack(err)
	}
	path := filepath.Join(c.Dir, Key(url))
	return errors.WithStack(os.WriteFile(path, data, 0o644))
}

// Clean removes every entry. A missing cache directory is not an error.
func (c *Cache) Clean() error {
	if !fileutil.IsDir(c.Dir) {
		return nil
	}
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.Dir, entry.Name())); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
