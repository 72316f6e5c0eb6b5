// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/orbit/gpu"
	"cogentcore.org/orbit/gpu/gputest"
	"cogentcore.org/orbit/gpu/shape"
	"cogentcore.org/orbit/gpu/webgpu"
	"cogentcore.org/orbit/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/spf13/cobra"
)

// liveCounter is a backend that can report its live objects.
type liveCounter interface {
	gpu.Backend
	Live() int
}

func newProbeCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Build a triangle mesh on a headless WebGPU device and release it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if dryRun {
				rc := gputest.NewRecorder()
				if err := probe(rc, w, (*gpu.Mesh).Draw); err != nil {
					return err
				}
				fmt.Fprintf(w, "recorded %d backend calls\n", len(rc.Calls))
				return nil
			}
			bk, err := webgpu.NewHeadless()
			if err != nil {
				return err
			}
			defer bk.Release()
			fmt.Fprintln(w, "acquired headless WebGPU device")
			return probe(bk, w, func(m *gpu.Mesh) error {
				return drawOffscreen(bk, m)
			})
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "record backend calls instead of using a GPU")
	return cmd
}

// probeShape is a white triangle facing +Z.
var probeShape = &shape.Triangle{
	A:     math32.Vec3(-0.5, -0.5, 0),
	B:     math32.Vec3(0.5, -0.5, 0),
	C:     math32.Vec3(0, 0.5, 0),
	Color: math32.Vec4(1, 1, 1, 1),
}

// probeTargetSize is the width and height of the offscreen target.
const probeTargetSize = 64

// probe builds, draws and releases a triangle mesh on the backend,
// reporting the objects it used to w.
func probe(bk liveCounter, w io.Writer, draw func(m *gpu.Mesh) error) error {
	m := gpu.NewMesh("probe", bk)
	defer m.Release()
	shape.SetMesh(m, probeShape)
	if err := m.Build(); err != nil {
		return err
	}
	fmt.Fprintf(w, "built mesh %q: %d vertices, %d indices, stride %d\n", m.Name, m.NumVertices(), m.NumIndices(), m.Layout.Stride)
	fmt.Fprintf(w, "live objects: %d\n", bk.Live())
	if err := draw(m); err != nil {
		return err
	}
	fmt.Fprintf(w, "drew %d indices\n", m.NumIndices())
	m.Release()
	fmt.Fprintf(w, "live objects after release: %d\n", bk.Live())
	if n := bk.Live(); n != 0 {
		return fmt.Errorf("probe: %d objects leaked", n)
	}
	return nil
}

// drawOffscreen draws the mesh with [webgpu.VertexColorShader]
// into a new offscreen target cleared to black.
func drawOffscreen(bk *webgpu.Backend, m *gpu.Mesh) error {
	tg, err := bk.NewTarget(probeTargetSize, probeTargetSize)
	if err != nil {
		return err
	}
	defer tg.Release()
	pl, err := bk.NewPipeline(m.VertexArray(), webgpu.VertexColorShader)
	if err != nil {
		return err
	}
	defer pl.Release()
	return bk.RenderPass(tg, pl, wgpu.Color{A: 1}, m.Draw)
}
