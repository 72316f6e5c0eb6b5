// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestOpenConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"sim.toml", "steps = 50\ndt = 0.5\ndims = [3]\n"},
		{"sim.yaml", "steps: 50\ndt: 0.5\ndims: [3]\n"},
		{"sim.yml", "steps: 50\ndt: 0.5\ndims:\n  - 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Defaults()
			require.NoError(t, OpenConfig(cfg, writeFile(t, tt.name, tt.content)))
			assert.Equal(t, 50, cfg.Steps)
			assert.Equal(t, float32(0.5), cfg.DT)
			assert.Equal(t, []int{3}, cfg.Dims)
			assert.Equal(t, float32(0), cfg.Damping)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestOpenConfigErrors(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, OpenConfig(cfg, writeFile(t, "sim.json", "{}")), "unknown format")
	assert.Error(t, OpenConfig(cfg, writeFile(t, "bad.toml", "steps = [")))
	assert.Error(t, OpenConfig(cfg, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestSaveConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.Steps = 7
	for _, name := range []string{"out.toml", "out.yaml"} {
		file := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveConfig(cfg, file))
		got := &Config{}
		require.NoError(t, OpenConfig(got, file))
		assert.Equal(t, cfg, got, name)
	}
	assert.Error(t, SaveConfig(cfg, filepath.Join(t.TempDir(), "out.ini")))
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Steps: -1, DT: 0, Dims: []int{4}, Damping: -1}
	err := cfg.Validate()
	assert.ErrorContains(t, err, "steps")
	assert.ErrorContains(t, err, "dt")
	assert.ErrorContains(t, err, "dims must be 2 or 3: 4")
	assert.ErrorContains(t, err, "damping")

	cfg = &Config{DT: 1}
	assert.ErrorContains(t, cfg.Validate(), "no dims")
}

func TestConfigValidateNonFinite(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	require.NoError(t, OpenConfig(cfg, writeFile(t, "nan.yaml", "dt: .nan\ndamping: .inf\n")))
	err := cfg.Validate()
	assert.ErrorContains(t, err, "dt must be positive and finite: NaN")
	assert.ErrorContains(t, err, "damping must be finite and not negative: +Inf")

	cfg.Defaults()
	require.NoError(t, OpenConfig(cfg, writeFile(t, "inf.toml", "dt = inf\n")))
	assert.ErrorContains(t, cfg.Validate(), "dt must be positive and finite: NaN")
}

func TestOpenConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	require.NoError(t, os.WriteFile(filepath.Join(home, "orbit.yaml"), []byte("steps: 3\n"), 0o644))
	cfg := &Config{}
	require.NoError(t, OpenConfig(cfg, "~/orbit.yaml"))
	assert.Equal(t, 3, cfg.Steps)
}
