// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package web implements an HTTP/1.1 client directly on top of TCP and TLS
// sockets. It speaks just enough of the protocol for go2web: GET requests,
// chunked responses, and redirects.
package web

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"

	"go.jetify.com/go2web/internal/cache"
	"go.jetify.com/go2web/internal/debug"
	"go.jetify.com/go2web/internal/ux"
	"go.jetify.com/go2web/internal/webcli/usererr"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxRedirects = 5
)

type Client struct {
	// Timeout bounds each request from dial to the final read. Zero means
	// the 15 second default.
	Timeout time.Duration
	// MaxRedirects bounds how many Location hops Fetch follows. Zero means
	// the default of 5.
	MaxRedirects int
	// Cache, when set, is consulted before the network and updated with the
	// final response.
	Cache *cache.Cache
	// Stderr receives progress messages (cache hits, redirects). Defaults to
	// io.Discard.
	Stderr io.Writer
}

// Fetch GETs rawURL, following redirects. Only the final response is cached,
// keyed by the URL originally requested.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	if c.Cache != nil {
		if entry, ok := c.Cache.Get(rawURL); ok {
			ux.Finfo(c.stderr(), "Using cached response for %s...\n", rawURL)
			return &Response{
				StatusCode: entry.StatusCode,
				Status:     entry.Status,
				Header:     entry.Headers,
				Body:       entry.Body,
			}, nil
		}
	}

	visited := map[string]bool{rawURL: true}
	current := rawURL
	for hop := 0; hop <= c.maxRedirects(); hop++ {
		u, err := ParseURL(current)
		if err != nil {
			return nil, err
		}

		resp, err := c.do(ctx, u)
		if err != nil {
			return nil, err
		}

		// A redirect without a Location header is returned as-is.
		location := resp.Get("Location")
		if !resp.IsRedirect() || location == "" {
			if c.Cache != nil {
				if err := c.Cache.Put(rawURL, &cache.Entry{
					Status:     resp.Status,
					StatusCode: resp.StatusCode,
					Headers:    resp.Header,
					Body:       resp.Body,
				}); err != nil {
					debug.Log("failed to cache response for %s: %v", rawURL, err)
				}
			}
			return resp, nil
		}

		next := u.ResolveReference(location)
		if visited[next] {
			return nil, usererr.New("redirect loop detected: %s -> %s", current, next)
		}
		visited[next] = true
		ux.Finfo(c.stderr(), "Redirecting to: %s ...\n", next)
		current = next
	}
	return nil, usererr.New("stopped after %d redirects fetching %s", c.maxRedirects(), rawURL)
}

func (c *Client) do(ctx context.Context, u *URL) (*Response, error) {
	timeout := c.timeout()
	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", u.Addr())
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", u.Addr())
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(timeout))

	if u.IsTLS() {
		// Certificates are not verified; fetched pages are display-only.
		tlsConn := tls.Client(conn, &tls.Config{
			ServerName:         u.Host,
			InsecureSkipVerify: true,
		})
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			return nil, errors.Wrapf(err, "TLS handshake with %s", u.Host)
		}
		conn = tlsConn
	}

	req := NewRequest(u)
	debug.Log("sending request to %s:\n%s", u.Addr(), req.Encode())
	if _, err := io.WriteString(conn, req.Encode()); err != nil {
		return nil, errors.Wrapf(err, "writing request to %s", u.Addr())
	}

	raw, err := io.ReadAll(conn)
	if err != nil && len(raw) == 0 {
		return nil, errors.Wrapf(err, "reading response from %s", u.Addr())
	}
	// With Connection: close some servers reset instead of closing cleanly;
	// whatever arrived before the error is still parsed.
	return ParseResponse(raw)
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

func (c *Client) maxRedirects() int {
	if c.MaxRedirects > 0 {
		return c.MaxRedirects
	}
	return defaultMaxRedirects
}

func (c *Client) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return io.Discard
}
