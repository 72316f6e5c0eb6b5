// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/orbit/base/logx"
	"github.com/spf13/cobra"
)

// newRootCmd returns the orbit command with all of its subcommands.
func newRootCmd() *cobra.Command {
	var vv, v, q bool
	cmd := &cobra.Command{
		Use:          "orbit",
		Short:        "Toy gravity simulations and GPU vertex layouts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "very verbose: log debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "verbose: log info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "quiet: only log errors")

	cmd.AddCommand(newSimCmd(), newLayoutCmd(), newProbeCmd())
	return cmd
}
