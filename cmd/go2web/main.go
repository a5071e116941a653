// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package main

import (
	"go.jetify.com/go2web/internal/webcli"
)

func main() {
	webcli.Main()
}
