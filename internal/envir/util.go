// Copyright 2024 Jetify Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

import (
	"os"
	"strconv"
)

func IsGo2webDebugEnabled() bool {
	enabled, _ := strconv.ParseBool(os.Getenv(Go2webDebug))
	return enabled
}

func GetValueOrDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
