// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cmdutil

import (
	"os/exec"
)

// First returns the path of the first command in the list that exists on the
// search path.
func First(commands ...string) (string, bool) {
	for _, command := range commands {
		if path, err := exec.LookPath(command); err == nil {
			return path, true
		}
	}
	return "", false
}
