// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package stepper

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Stepper struct {
	w       io.Writer
	spinner *spinner.Spinner
}

func Start(w io.Writer, format string, a ...any) *Stepper {
	if !isInteractive() {
		fmt.Fprintf(w, "%s %s\n", color.BlueString("→"), fmt.Sprintf(format, a...))
		return &Stepper{w: w}
	}

	spinner := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	err := spinner.Color("magenta")
	if err != nil {
		panic(err)
	}
	spinner.Suffix = " " + fmt.Sprintf(format, a...)
	spinner.Start()
	return &Stepper{
		w:       w,
		spinner: spinner,
	}
}

func (s *Stepper) Fail(format string, a ...any) {
	s.finish(color.RedString("✘"), fmt.Sprintf(format, a...))
}

func (s *Stepper) Success(format string, a ...any) {
	s.finish(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

func (s *Stepper) finish(mark, msg string) {
	if s.spinner == nil {
		fmt.Fprintf(s.w, "%s %s\n", mark, msg)
		return
	}
	s.spinner.FinalMSG = fmt.Sprintf("%s %s\n", mark, msg)
	s.spinner.Stop()
}

// isInteractive reports whether stderr is attached to a terminal. The spinner
// animation garbles logs and test output otherwise.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}
