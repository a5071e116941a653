// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package webcli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.jetify.com/go2web/internal/cache"
	"go.jetify.com/go2web/internal/page"
	"go.jetify.com/go2web/internal/web"
)

type fetchCmdFlags struct {
	raw          bool
	seo          bool
	headers      bool
	noCache      bool
	maxRedirects int
	timeout      time.Duration
}

func fetchCmd() *cobra.Command {
	flags := fetchCmdFlags{}
	command := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a URL and print its readable content",
		Long: "Fetch a URL over a raw HTTP/1.1 connection and print the response. " +
			"By default HTML is reduced to readable text and JSON is pretty-printed; " +
			"use --raw, --seo, or --headers for other views.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchCmdFunc(cmd, args[0], flags)
		},
	}

	command.Flags().BoolVar(
		&flags.raw, "raw", false, "print the response body without any processing")
	command.Flags().BoolVar(
		&flags.seo, "seo", false, "print the page's SEO summary as JSON")
	command.Flags().BoolVar(
		&flags.headers, "headers", false, "print the response status and headers")
	command.Flags().BoolVar(
		&flags.noCache, "no-cache", false, "bypass the response cache")
	command.Flags().IntVar(
		&flags.maxRedirects, "max-redirects", 5, "maximum number of redirects to follow")
	command.Flags().DurationVar(
		&flags.timeout, "timeout", 15*time.Second, "timeout for the whole request")

	return command
}

func fetchCmdFunc(cmd *cobra.Command, rawURL string, flags fetchCmdFlags) error {
	client := &web.Client{
		Timeout:      flags.timeout,
		MaxRedirects: flags.maxRedirects,
		Stderr:       cmd.ErrOrStderr(),
	}
	if !flags.noCache {
		client.Cache = cache.Default()
	}

	resp, err := client.Fetch(cmd.Context(), rawURL)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case flags.headers:
		fmt.Fprintf(w, "Status: %s\n", resp.Status)
		names := make([]string, 0, len(resp.Header))
		for name := range resp.Header {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s: %s\n", name, resp.Header[name])
		}
		return nil
	case flags.seo:
		report, err := json.MarshalIndent(page.ExtractSEO(resp.Body), "", "    ")
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintln(w, string(report))
		return nil
	case flags.raw:
		fmt.Fprintln(w, resp.Body)
		return nil
	default:
		fmt.Fprintln(w, renderBody(resp))
		return nil
	}
}

// renderBody picks the default rendering by content type: JSON is
// pretty-printed, everything else goes through the readable-text pipeline.
func renderBody(resp *web.Response) string {
	if strings.Contains(strings.ToLower(resp.ContentType()), "application/json") {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(resp.Body), "", "    "); err == nil {
			return buf.String()
		}
		// fall through when the payload isn't actually JSON
	}
	return page.Text(resp.Body)
}
