// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package page reduces HTML documents to terminal-friendly output: plain
// readable text and an SEO summary.
package page

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
)

// Text strips an HTML document down to its readable text: script and style
// subtrees are dropped, each line is trimmed, runs of double spaces split
// phrases apart, and empty chunks are discarded.
func Text(body string) string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		// html.Parse recovers from almost anything; an error means the input
		// is not HTML at all.
		return body
	}

	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}

	var sb strings.Builder
	collectText(root, &sb)
	return collapse(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func collapse(text string) string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			chunks = append(chunks, strings.TrimSpace(phrase))
		}
	}
	chunks = lo.Filter(chunks, func(chunk string, _ int) bool {
		return chunk != ""
	})
	return strings.Join(chunks, "\n")
}

// findElement returns the first element named tag in depth-first order.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findElements returns every element named tag in depth-first order.
func findElements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		found = append(found, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, findElements(c, tag)...)
	}
	return found
}

// nodeText returns the trimmed text content of a node and its descendants.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}
