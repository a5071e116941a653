// Copyright 2024 Jetify Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

const (
	Go2webCacheDir = "GO2WEB_CACHE_DIR"
	Go2webDebug    = "GO2WEB_DEBUG"
	// Go2webLatestVersion is the latest version available of the go2web CLI
	// binary.
	// NOTE: it should NOT start with v (like 0.4.8)
	Go2webLatestVersion = "GO2WEB_LATEST_VERSION"
	// Go2webPip overrides the pip executable used by `go2web setup`.
	Go2webPip = "GO2WEB_PIP"

	XDGCacheHome = "XDG_CACHE_HOME"
)

// system
const (
	Path = "PATH"
)
