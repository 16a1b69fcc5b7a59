// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command material generates Material Design 3 color themes from seed colors.
package main

import (
	"os"

	"cogentcore.org/material/cmd/material/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
