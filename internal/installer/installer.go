// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package installer performs the two-step setup of the go2web Python
// package: upgrade pip, then register the package directory as an editable
// install. Steps run in that order and the first failure aborts the run.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"go.jetify.com/go2web/internal/cmdutil"
	"go.jetify.com/go2web/internal/debug"
	"go.jetify.com/go2web/internal/envir"
	"go.jetify.com/go2web/internal/fileutil"
	"go.jetify.com/go2web/internal/ux/stepper"
	"go.jetify.com/go2web/internal/webcli/usererr"
)

// packageDefinition is the file pip needs to perform an editable install.
const packageDefinition = "setup.py"

type Installer struct {
	// Dir is the directory containing the package definition. When empty it
	// is resolved from the location of the running binary.
	Dir string
	// Pip overrides pip discovery. GO2WEB_PIP takes precedence over PATH
	// lookup; this field takes precedence over both.
	Pip string
	// Stderr receives step progress. Defaults to os.Stderr.
	Stderr io.Writer
}

// Run upgrades pip and installs the package directory in editable mode. The
// success message is only printed once both steps have succeeded; any failure
// propagates, carrying pip's exit code.
func (i *Installer) Run(ctx context.Context, out io.Writer) error {
	dir, err := i.packageDir()
	if err != nil {
		return err
	}

	pip, err := i.pipPath()
	if err != nil {
		return err
	}

	if !fileutil.IsFile(filepath.Join(dir, packageDefinition)) {
		return usererr.New(
			"no package definition (%s) found in %s", packageDefinition, dir)
	}

	// The upgrade mutates the active pip itself, so it must come first: the
	// editable install below runs on the upgraded tool.
	if err := i.runStep(ctx, "Upgrading pip", pip, "install", "--upgrade", "pip"); err != nil {
		return err
	}
	if err := i.runStep(ctx, "Installing go2web in editable mode", pip, "install", "-e", dir); err != nil {
		return err
	}

	fmt.Fprintln(out, "go2web has been installed successfully!")
	fmt.Fprintln(out, "You can now use go2web from any directory.")
	return nil
}

func (i *Installer) runStep(ctx context.Context, desc, name string, args ...string) error {
	step := stepper.Start(i.stderr(), "%s", desc)
	cmd := exec.CommandContext(ctx, name, args...)
	debug.Log("running command: %s", cmd)
	out, err := cmd.CombinedOutput()
	if err != nil {
		step.Fail("%s failed", desc)
		if len(out) > 0 {
			fmt.Fprint(i.stderr(), string(out))
		}
		return errors.Wrapf(
			usererr.NewExecError(err), "running %q", strings.Join(cmd.Args, " "))
	}
	step.Success("%s", desc)
	return nil
}

func (i *Installer) packageDir() (string, error) {
	if i.Dir != "" {
		return i.Dir, nil
	}
	return SelfDir()
}

func (i *Installer) pipPath() (string, error) {
	if i.Pip != "" {
		return i.Pip, nil
	}
	if pip := os.Getenv(envir.Go2webPip); pip != "" {
		return pip, nil
	}
	if pip, found := cmdutil.First("pip3", "pip"); found {
		return pip, nil
	}
	return "", usererr.New(
		"could not find pip in your PATH\nInstall pip by following the " +
			"instructions at https://pip.pypa.io/en/stable/installation/ and " +
			"make sure it is on your PATH",
	)
}

func (i *Installer) stderr() io.Writer {
	if i.Stderr != nil {
		return i.Stderr
	}
	return os.Stderr
}

// SelfDir returns the absolute directory containing the running binary, with
// symbolic links resolved. The result is independent of the caller's working
// directory.
func SelfDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", usererr.WithUserMessage(
			errors.WithStack(err), "could not determine the go2web binary location")
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Dir(resolved), nil
}
