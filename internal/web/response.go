// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package web

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type Response struct {
	StatusCode int
	Status     string // e.g. "200 OK"
	Header     map[string]string
	Body       string
}

// ParseResponse parses a raw HTTP/1.1 response. Chunked transfer encoding is
// decoded; other transfer encodings are not requested (Accept-Encoding is
// pinned to identity).
func ParseResponse(raw []byte) (*Response, error) {
	text := decodeText(raw)
	head, body, found := strings.Cut(text, "\r\n\r\n")
	if !found {
		return nil, errors.New("malformed HTTP response: missing header terminator")
	}

	lines := strings.Split(head, "\r\n")
	resp := &Response{Header: map[string]string{}}
	if err := resp.parseStatusLine(lines[0]); err != nil {
		return nil, err
	}
	for _, line := range lines[1:] {
		if name, value, ok := strings.Cut(line, ":"); ok {
			// last value wins for repeated headers
			resp.Header[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
	}

	if strings.EqualFold(resp.Get("Transfer-Encoding"), "chunked") {
		body = decodeChunked(body)
	}
	resp.Body = body
	return resp, nil
}

func (r *Response) parseStatusLine(line string) error {
	if !strings.HasPrefix(line, "HTTP/") {
		return errors.Errorf("malformed HTTP status line %q", line)
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return errors.Errorf("malformed HTTP status line %q", line)
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return errors.Wrapf(err, "malformed HTTP status code in %q", line)
	}
	r.StatusCode = code
	r.Status = strings.Join(parts[1:], " ")
	return nil
}

// Get returns the value of the named header, matching case-insensitively.
func (r *Response) Get(name string) string {
	for k, v := range r.Header {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Get("Content-Type")
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// decodeChunked decodes a chunked transfer-encoded body. It is deliberately
// lenient: a truncated or malformed chunk yields whatever data is present
// instead of an error, since the connection is already closed.
func decodeChunked(body string) string {
	var decoded strings.Builder
	index := 0

	for index < len(body) {
		sizeEnd := strings.Index(body[index:], "\r\n")
		if sizeEnd == -1 {
			decoded.WriteString(body[index:])
			break
		}
		sizeEnd += index

		sizeLine := strings.TrimSpace(body[index:sizeEnd])
		// drop chunk extensions
		if i := strings.Index(sizeLine, ";"); i >= 0 {
			sizeLine = sizeLine[:i]
		}
		size, err := strconv.ParseInt(sizeLine, 16, 64)
		if err != nil {
			decoded.WriteString(body[index:])
			break
		}
		if size == 0 {
			break
		}

		start := sizeEnd + 2
		end := start + int(size)
		if end <= len(body) {
			decoded.WriteString(body[start:end])
			index = end + 2 // skip the trailing CRLF
		} else {
			if start < len(body) {
				decoded.WriteString(body[start:])
			}
			break
		}
	}
	return decoded.String()
}

// decodeText converts raw bytes to a valid UTF-8 string. Non-UTF-8 payloads
// fall back to a Latin-1 byte-to-rune mapping so no data is dropped.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
