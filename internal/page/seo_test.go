package page

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractSEO(t *testing.T) {
	body := `<html>
<head>
  <title> Example Title </title>
  <meta name="description" content="A page about examples">
  <meta name="keywords" content="example, test">
  <meta name="robots" content="index, follow">
  <meta property="og:title" content="Example OG Title">
  <meta property="og:description" content="Shared description">
  <meta property="og:image" content="https://example.com/og.png">
  <meta name="twitter:card" content="summary">
  <meta name="twitter:title" content="Example Twitter Title">
  <link rel="canonical" href="https://example.com/canonical">
</head>
<body>
  <h1>First Heading</h1>
  <h1> Second Heading </h1>
</body>
</html>`

	got := ExtractSEO(body)
	want := &SEO{
		Title:         "Example Title",
		Description:   "A page about examples",
		Keywords:      "example, test",
		Robots:        "index, follow",
		OGTitle:       "Example OG Title",
		OGDescription: "Shared description",
		OGImage:       "https://example.com/og.png",
		TwitterCard:   "summary",
		TwitterTitle:  "Example Twitter Title",
		Canonical:     "https://example.com/canonical",
		H1Tags:        []string{"First Heading", "Second Heading"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractSEO mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSEOEmptyDocument(t *testing.T) {
	got := ExtractSEO("")
	if got.Title != "" {
		t.Errorf("expected empty title, got %q", got.Title)
	}
	if len(got.H1Tags) != 0 {
		t.Errorf("expected no h1 tags, got %v", got.H1Tags)
	}
}
