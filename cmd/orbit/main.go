// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbit runs toy gravity simulations and inspects
// GPU vertex layouts.
//
//	orbit sim [--config file] [--steps n] [--dt s] [--dims 2|3]
//	orbit layout [--attr name:kind ...]
//	orbit probe [--dry-run]
package main

import (
	"os"

	"cogentcore.org/orbit/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
