// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"cogentcore.org/orbit/base/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLevelFlags(t *testing.T) {
	prev := logx.UserLevel
	defer func() { logx.UserLevel = prev }()

	_, err := execute(t, "-v", "layout")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, logx.UserLevel)

	_, err = execute(t, "--vv", "layout")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)

	_, err = execute(t, "layout", "-q")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, logx.UserLevel)
}

func TestSim(t *testing.T) {
	out, err := execute(t, "sim", "--steps", "10")
	require.NoError(t, err)
	i2 := strings.Index(out, "=== 2D Physics ===")
	i3 := strings.Index(out, "=== 3D Physics ===")
	assert.GreaterOrEqual(t, i2, 0)
	assert.Greater(t, i3, i2)
	assert.Equal(t, 2, strings.Count(out, "Final state:"))
	assert.Contains(t, out, "Sun - Pos: (0, 0), Vel: (0, 0), Mass: 1e+10")
	assert.Contains(t, out, "Planet - Pos: (100, ")
}

func TestSimConfigOverride(t *testing.T) {
	file := writeFile(t, "sim.toml", "steps = 5\ndims = [2]\ndt = 1.0\n")
	out, err := execute(t, "sim", "--config", file, "--dt", "0.5")
	require.NoError(t, err)
	assert.NotContains(t, out, "3D")
	// 5 steps of 0.5s at 10 units per second
	assert.Contains(t, out, "Planet - Pos: (100, 25)")

	_, err = execute(t, "sim", "--dims", "4")
	assert.ErrorContains(t, err, "dims must be 2 or 3")
}

func TestRunSimCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &Config{}
	cfg.Defaults()
	var out bytes.Buffer
	assert.ErrorIs(t, runSim(ctx, cfg, &out), context.Canceled)
	assert.Empty(t, out.String())
}

func TestLayout(t *testing.T) {
	out, err := execute(t, "layout")
	require.NoError(t, err)
	assert.Contains(t, out, "Position")
	assert.Contains(t, out, "Stride: 64")

	out, err = execute(t, "layout", "--attr", "pos:Vector3", "-a", "normal:Vector3", "-a", "uv:Vector2")
	require.NoError(t, err)
	assert.Contains(t, out, "Stride: 32")
}

func TestBuildLayout(t *testing.T) {
	ly, err := buildLayout([]string{"color:Vector4:normalized", "id:Uint"})
	require.NoError(t, err)
	assert.True(t, ly.Attributes[0].Normalized)
	assert.Equal(t, 16, ly.Attributes[1].Offset)
	assert.Equal(t, 20, ly.Stride)

	for _, bad := range []string{"pos", ":Vector3", "pos:Matrix4", "pos:Vector3:flat", "a:b:c:d"} {
		_, err := buildLayout([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestProbeDryRun(t *testing.T) {
	out, err := execute(t, "probe", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, `built mesh "probe": 3 vertices, 3 indices, stride 64`)
	assert.Contains(t, out, "live objects: 3")
	assert.Contains(t, out, "drew 3 indices")
	assert.Contains(t, out, "live objects after release: 0")
	assert.Contains(t, out, "recorded")
}
