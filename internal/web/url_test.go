package web

import (
	"testing"
)

func TestParseURL(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedScheme string
		expectedHost   string
		expectedPort   int
		expectedPath   string
		expectErr      bool
	}{
		{
			name:           "bare-host-defaults-to-https",
			input:          "example.com",
			expectedScheme: "https",
			expectedHost:   "example.com",
			expectedPort:   443,
			expectedPath:   "/",
		},
		{
			name:           "http-scheme-default-port",
			input:          "http://example.com/index.html",
			expectedScheme: "http",
			expectedHost:   "example.com",
			expectedPort:   80,
			expectedPath:   "/index.html",
		},
		{
			name:           "explicit-port",
			input:          "http://127.0.0.1:8080/ping",
			expectedScheme: "http",
			expectedHost:   "127.0.0.1",
			expectedPort:   8080,
			expectedPath:   "/ping",
		},
		{
			name:           "query-preserved",
			input:          "https://example.com/search?q=go&page=2",
			expectedScheme: "https",
			expectedHost:   "example.com",
			expectedPort:   443,
			expectedPath:   "/search?q=go&page=2",
		},
		{
			name:           "empty-path-becomes-root",
			input:          "https://example.com",
			expectedScheme: "https",
			expectedHost:   "example.com",
			expectedPort:   443,
			expectedPath:   "/",
		},
		{
			name:      "missing-host",
			input:     "https:///nope",
			expectErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			u, err := ParseURL(testCase.input)
			if testCase.expectErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", u)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.Scheme != testCase.expectedScheme {
				t.Errorf("scheme: expected %q, got %q", testCase.expectedScheme, u.Scheme)
			}
			if u.Host != testCase.expectedHost {
				t.Errorf("host: expected %q, got %q", testCase.expectedHost, u.Host)
			}
			if u.Port != testCase.expectedPort {
				t.Errorf("port: expected %d, got %d", testCase.expectedPort, u.Port)
			}
			if u.Path != testCase.expectedPath {
				t.Errorf("path: expected %q, got %q", testCase.expectedPath, u.Path)
			}
		})
	}
}

func TestRequestHost(t *testing.T) {
	u, err := ParseURL("http://example.com:8080/")
	if err != nil {
		t.Fatal(err)
	}
	if got := u.RequestHost(); got != "example.com:8080" {
		t.Errorf("expected host with port, got %q", got)
	}

	u, err = ParseURL("https://example.com/")
	if err != nil {
		t.Fatal(err)
	}
	if got := u.RequestHost(); got != "example.com" {
		t.Errorf("expected bare host, got %q", got)
	}
}

func TestResolveReference(t *testing.T) {
	base, err := ParseURL("https://example.com/a/b")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		location string
		expected string
	}{
		{
			name:     "absolute",
			location: "http://other.com/x",
			expected: "http://other.com/x",
		},
		{
			name:     "scheme-relative",
			location: "//cdn.example.com/x",
			expected: "https://cdn.example.com/x",
		},
		{
			name:     "root-relative",
			location: "/login",
			expected: "https://example.com/login",
		},
		{
			name:     "bare-relative",
			location: "next",
			expected: "https://example.com/next",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := base.ResolveReference(testCase.location); got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}
