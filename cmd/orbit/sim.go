// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/orbit/math32"
	"cogentcore.org/orbit/physics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSimCmd() *cobra.Command {
	var file, save string
	flagCfg := &Config{}
	flagCfg.Defaults()
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the sun, planet and photon gravity scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &Config{}
			cfg.Defaults()
			if file != "" {
				if err := OpenConfig(cfg, file); err != nil {
					return err
				}
			}
			fs := cmd.Flags()
			if fs.Changed("steps") {
				cfg.Steps = flagCfg.Steps
			}
			if fs.Changed("dt") {
				cfg.DT = flagCfg.DT
			}
			if fs.Changed("dims") {
				cfg.Dims = flagCfg.Dims
			}
			if fs.Changed("damping") {
				cfg.Damping = flagCfg.Damping
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if save != "" {
				if err := SaveConfig(cfg, save); err != nil {
					return err
				}
			}
			return runSim(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&file, "config", "c", "", "config file to open (.toml, .yaml or .yml)")
	fs.StringVar(&save, "save", "", "file to save the resulting config to")
	fs.IntVarP(&flagCfg.Steps, "steps", "n", flagCfg.Steps, "number of integration steps")
	fs.Float32Var(&flagCfg.DT, "dt", flagCfg.DT, "seconds per step")
	fs.IntSliceVar(&flagCfg.Dims, "dims", flagCfg.Dims, "dimensions of the scenarios to run, 2 and/or 3")
	fs.Float32Var(&flagCfg.Damping, "damping", flagCfg.Damping, "linear damping of every body")
	return cmd
}

// runSim runs a scenario for each of the configured dimensions
// concurrently, and then writes their reports to w in order.
func runSim(ctx context.Context, cfg *Config, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	outs := make([]bytes.Buffer, len(cfg.Dims))
	g, ctx := errgroup.WithContext(ctx)
	for i, d := range cfg.Dims {
		g.Go(func() error {
			switch d {
			case 2:
				return simulate(ctx, "2D", physics.SolarSystem2(), cfg, &outs[i])
			case 3:
				return simulate(ctx, "3D", physics.SolarSystem3(), cfg, &outs[i])
			}
			return fmt.Errorf("dims must be 2 or 3: %d", d)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range outs {
		if _, err := w.Write(outs[i].Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// simulate runs the given bodies, reporting their
// initial and final states to w.
func simulate[V physics.Vector[V], R math32.Rotor[V]](ctx context.Context, title string, bodies []physics.Body[V, R], cfg *Config, w io.Writer) error {
	for i := range bodies {
		bodies[i].Damping.Linear = cfg.Damping
	}
	fmt.Fprintf(w, "=== %s Physics ===\n\nInitial state:\n", title)
	printBodies(w, bodies)
	slog.Info("simulating", "scenario", title, "bodies", len(bodies), "steps", cfg.Steps, "dt", cfg.DT)
	if err := physics.Run(ctx, bodies, cfg.DT, cfg.Steps); err != nil {
		return fmt.Errorf("%s scenario: %w", title, err)
	}
	fmt.Fprintf(w, "\nFinal state:\n")
	printBodies(w, bodies)
	fmt.Fprintln(w)
	return nil
}

func printBodies[V physics.Vector[V], R math32.Rotor[V]](w io.Writer, bodies []physics.Body[V, R]) {
	for i := range bodies {
		fmt.Fprintln(w, bodies[i].String())
	}
}
