// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package web

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// URL is the subset of a parsed URL needed to open a socket and write a
// request line. Path always carries the query string, since that is what goes
// on the wire.
type URL struct {
	Scheme string
	Host   string // hostname without port
	Port   int
	Path   string // request target, including the query string
}

// ParseURL parses rawURL, defaulting the scheme to https and the port to the
// scheme's well-known port.
func ParseURL(rawURL string) (*URL, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid URL %q", rawURL)
	}
	if parsed.Hostname() == "" {
		return nil, errors.Errorf("URL %q has no host", rawURL)
	}

	port := 443
	if parsed.Scheme == "http" {
		port = 80
	}
	if portStr := parsed.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid port in URL %q", rawURL)
		}
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}

	return &URL{
		Scheme: parsed.Scheme,
		Host:   parsed.Hostname(),
		Port:   port,
		Path:   path,
	}, nil
}

// Addr returns the host:port to dial.
func (u *URL) Addr() string {
	return net.JoinHostPort(u.Host, strconv.Itoa(u.Port))
}

func (u *URL) IsTLS() bool {
	return u.Scheme == "https"
}

// RequestHost returns the value for the Host header: the bare hostname for
// well-known ports, host:port otherwise.
func (u *URL) RequestHost() string {
	if (u.Scheme == "https" && u.Port == 443) || (u.Scheme == "http" && u.Port == 80) {
		return u.Host
	}
	return u.Addr()
}

func (u *URL) String() string {
	return u.Scheme + "://" + u.RequestHost() + u.Path
}

// ResolveReference resolves a Location header value against u. Servers send
// absolute, scheme-relative, root-relative, and bare relative forms.
func (u *URL) ResolveReference(location string) string {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return location
	case strings.HasPrefix(location, "//"):
		return u.Scheme + ":" + location
	case strings.HasPrefix(location, "/"):
		return u.Scheme + "://" + u.RequestHost() + location
	default:
		return u.Scheme + "://" + u.RequestHost() + "/" + location
	}
}
