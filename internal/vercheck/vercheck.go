// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package vercheck

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/mod/semver"

	"go.jetify.com/go2web/internal/build"
	"go.jetify.com/go2web/internal/envir"
	"go.jetify.com/go2web/internal/installer"
	"go.jetify.com/go2web/internal/ux"
	"go.jetify.com/go2web/internal/xdg"
)

// commandSkipList are commands whose output tends to be consumed by scripts,
// so the update notice would corrupt it.
var commandSkipList = []string{
	"go2web version",
	"go2web cache path",
}

// package vars so tests can stub the build info
var (
	currentVersion = build.Version
	isDevBuild     = build.IsDev
)

// CheckVersion prints a notice on w when a newer go2web is available.
// commandPath is the fully qualified name of the command being run.
func CheckVersion(w io.Writer, commandPath string) {
	if isDevBuild || lo.Contains(commandSkipList, commandPath) {
		return
	}

	latest := canonical(latestVersion())
	current := canonical(currentVersion)
	if latest == "" || !semver.IsValid(latest) {
		return
	}
	if semver.Compare(latest, current) > 0 {
		ux.Fwarning(
			w,
			"New go2web available: %s (current = %s). Run `go2web version update` to update.\n",
			latest,
			current,
		)
	}
}

// SelfUpdate refreshes the go2web install: it drops the cached version
// notice, re-runs the installer (pip upgrade plus editable install), and
// prints the version that ended up active.
func SelfUpdate(ctx context.Context, stdOut, stdErr io.Writer) error {
	// Remove the version cache file, so the next check starts fresh.
	_ = os.Remove(versionCacheFilePath())

	inst := &installer.Installer{Stderr: stdErr}
	if err := inst.Run(ctx, stdOut); err != nil {
		return err
	}

	fmt.Fprint(stdOut, "Current version: ")
	return triggerVersionPrint(ctx, stdOut, stdErr)
}

func triggerVersionPrint(ctx context.Context, stdOut, stdErr io.Writer) error {
	exe, err := os.Executable()
	if err != nil {
		return errors.WithStack(err)
	}
	cmd := exec.CommandContext(ctx, exe, "version")
	cmd.Stdout = stdOut
	cmd.Stderr = stdErr
	return errors.WithStack(cmd.Run())
}

// latestVersion prefers the env var set by the launcher and falls back to the
// value cached by the last update check. Empty means unknown.
func latestVersion() string {
	if v := os.Getenv(envir.Go2webLatestVersion); v != "" {
		return v
	}
	data, err := os.ReadFile(versionCacheFilePath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func canonical(version string) string {
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}

// versionCacheFilePath returns the path to the file that contains the latest
// known version.
func versionCacheFilePath() string {
	return filepath.Join(xdg.CacheSubpath("go2web"), "latest-version")
}
