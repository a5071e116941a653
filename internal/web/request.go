// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package web

import (
	"fmt"
	"sort"
	"strings"
)

// userAgent mimics a desktop browser to minimize blocking.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Request struct {
	Method string
	URL    *URL
	Header map[string]string // extra headers, on top of the fixed set
	Body   string
}

func NewRequest(u *URL) *Request {
	return &Request{Method: "GET", URL: u}
}

// fixedHeaders are always sent, in this order. Extra headers with the same
// name are ignored.
func (r *Request) fixedHeaders() [][2]string {
	return [][2]string{
		{"Host", r.URL.RequestHost()},
		{"User-Agent", userAgent},
		{"Accept", "text/html,application/json,*/*"},
		{"Accept-Encoding", "identity"},
		{"Connection", "close"},
	}
}

// Encode renders the request as an HTTP/1.1 message ready to write to the
// socket.
func (r *Request) Encode() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s HTTP/1.1\r\n", r.Method, r.URL.Path)

	fixed := r.fixedHeaders()
	seen := map[string]bool{}
	for _, header := range fixed {
		fmt.Fprintf(&b, "%s: %s\r\n", header[0], header[1])
		seen[strings.ToLower(header[0])] = true
	}

	extra := make([]string, 0, len(r.Header))
	for name := range r.Header {
		if !seen[strings.ToLower(name)] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		fmt.Fprintf(&b, "%s: %s\r\n", name, r.Header[name])
	}

	if r.Body != "" {
		fmt.Fprintf(&b, "Content-Length: %d\r\n", len(r.Body))
	}
	b.WriteString("\r\n")
	b.WriteString(r.Body)
	return b.String()
}
