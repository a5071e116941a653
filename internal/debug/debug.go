// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package debug

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"go.jetify.com/go2web/internal/envir"
)

var enabled bool

func init() {
	enabled = envir.IsGo2webDebugEnabled()
}

func IsEnabled() bool { return enabled }

func Enable() {
	enabled = true
	log.SetPrefix("[DEBUG] ")
	log.SetFlags(log.Llongfile | log.Ldate | log.Ltime)
	_ = log.Output(2, "Debug mode enabled.")
}

func Log(format string, v ...any) {
	if !enabled {
		return
	}
	_ = log.Output(2, fmt.Sprintf(format, v...))
}

func Recover() {
	r := recover()
	if r == nil {
		return
	}

	if enabled {
		log.Println("Allowing panic because debug mode is enabled.")
		panic(r)
	}
	fmt.Println("Error:", r)
}

// EarliestStackTrace returns the innermost error in err's chain that carries a
// stack trace, so that error reports point at where the failure originated.
func EarliestStackTrace(err error) error {
	type pkgErrorsStackTracer interface{ StackTrace() errors.StackTrace }

	var stErr error
	for err != nil {
		//nolint:errorlint
		if _, ok := err.(pkgErrorsStackTracer); ok {
			stErr = err
		}
		err = errors.Unwrap(err)
	}
	return stErr
}
