// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package page

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
)

// SEO summarizes the metadata search engines and social cards read from a
// page. JSON field names use snake_case to match go2web's report format.
type SEO struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Keywords           string   `json:"keywords"`
	H1Tags             []string `json:"h1_tags"`
	Canonical          string   `json:"canonical"`
	Robots             string   `json:"robots"`
	OGTitle            string   `json:"og_title"`
	OGDescription      string   `json:"og_description"`
	OGImage            string   `json:"og_image"`
	TwitterCard        string   `json:"twitter_card"`
	TwitterTitle       string   `json:"twitter_title"`
	TwitterDescription string   `json:"twitter_description"`
	TwitterImage       string   `json:"twitter_image"`
}

// ExtractSEO pulls the SEO summary out of an HTML document. Missing fields
// are left empty; unparseable input yields an empty summary.
func ExtractSEO(body string) *SEO {
	info := &SEO{H1Tags: []string{}}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return info
	}

	if title := findElement(doc, "title"); title != nil {
		info.Title = nodeText(title)
	}

	// meta tags carry the field either in name= (description, robots, ...)
	// or property= (og:*, twitter:*)
	fields := map[string]*string{
		"description":         &info.Description,
		"keywords":            &info.Keywords,
		"robots":              &info.Robots,
		"og:title":            &info.OGTitle,
		"og:description":      &info.OGDescription,
		"og:image":            &info.OGImage,
		"twitter:card":        &info.TwitterCard,
		"twitter:title":       &info.TwitterTitle,
		"twitter:description": &info.TwitterDescription,
		"twitter:image":       &info.TwitterImage,
	}
	for _, meta := range findElements(doc, "meta") {
		key := strings.ToLower(attr(meta, "name"))
		if key == "" {
			key = strings.ToLower(attr(meta, "property"))
		}
		if dst, ok := fields[key]; ok {
			*dst = strings.TrimSpace(attr(meta, "content"))
		}
	}

	info.H1Tags = lo.Map(findElements(doc, "h1"), func(h1 *html.Node, _ int) string {
		return nodeText(h1)
	})

	for _, link := range findElements(doc, "link") {
		if strings.EqualFold(attr(link, "rel"), "canonical") {
			info.Canonical = strings.TrimSpace(attr(link, "href"))
			break
		}
	}

	return info
}
