// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the sim command, which can be
// loaded from a TOML or YAML file and overridden by flags.
type Config struct {

	// number of integration steps to run
	Steps int `toml:"steps" yaml:"steps"`

	// seconds per step
	DT float32 `toml:"dt" yaml:"dt"`

	// dimensions of the scenarios to run, each 2 or 3;
	// scenarios run concurrently
	Dims []int `toml:"dims" yaml:"dims"`

	// linear damping applied to every body
	Damping float32 `toml:"damping" yaml:"damping"`
}

// Defaults sets the default values, which are a 60 fps step
// of both the 2D and 3D scenarios, without damping.
func (cfg *Config) Defaults() {
	cfg.Steps = 1000
	cfg.DT = 0.016
	cfg.Dims = []int{2, 3}
	cfg.Damping = 0
}

// Validate returns an error for each invalid value.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative: %d", cfg.Steps))
	}
	if cfg.DT <= 0 || !finite(cfg.DT) {
		errs = append(errs, fmt.Errorf("dt must be positive and finite: %g", cfg.DT))
	}
	if len(cfg.Dims) == 0 {
		errs = append(errs, errors.New("no dims to simulate"))
	}
	for _, d := range cfg.Dims {
		if d != 2 && d != 3 {
			errs = append(errs, fmt.Errorf("dims must be 2 or 3: %d", d))
		}
	}
	if cfg.Damping < 0 || !finite(cfg.Damping) {
		errs = append(errs, fmt.Errorf("damping must be finite and not negative: %g", cfg.Damping))
	}
	return errors.Join(errs...)
}

// finite reports whether x is neither NaN nor an infinity,
// both of which YAML and TOML can express.
func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

// OpenConfig reads the given config file into cfg, using the file
// extension to choose between TOML (.toml) and YAML (.yaml, .yml).
// Values not in the file are left unchanged. A leading ~ in
// the file name is expanded to the home directory.
func OpenConfig(cfg *Config, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config file %q: unknown format %q; must be .toml, .yaml or .yml", file, ext)
	}
	if err != nil {
		return fmt.Errorf("config file %q: %w", file, err)
	}
	slog.Info("opened config", "file", file)
	return nil
}

// SaveConfig writes cfg to the given file, in the format
// given by its extension, as in [OpenConfig].
func SaveConfig(cfg *Config, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	var data []byte
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config file %q: unknown format %q; must be .toml, .yaml or .yml", file, ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}
