// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the boxscene application configuration,
// which is set from defaults, an optional TOML file, and flags.
package config

import (
	"log/slog"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"github.com/boxscene/boxscene/engine"
)

// Filename is the config file looked for in the working directory.
const Filename = "boxscene.toml"

// Config is the configuration of the boxscene application.
type Config struct {

	// Title is the window title.
	Title string `default:"Box Scene"`

	// LightIntensity is the intensity of the light shining from above.
	LightIntensity float32 `default:"0.7" flag:"light-intensity"`

	// BoxSize is the edge length of the box.
	BoxSize float32 `default:"2" flag:"box-size"`

	// GroundSize is the width and depth of the ground plane.
	GroundSize float32 `default:"6" flag:"ground-size"`

	// CameraHeight is how far above the ground the camera starts.
	CameraHeight float32 `default:"5" flag:"camera-height"`

	// CameraDistance is how far behind the origin the camera starts.
	CameraDistance float32 `default:"10" flag:"camera-distance"`

	// MoveStep is how far the camera moves per navigation key press.
	MoveStep float32 `default:"0.5" flag:"move-step"`

	// Debug turns on debug logging.
	Debug bool `flag:"debug"`
}

// New returns a config with all defaults set.
func New() *Config {
	cfg := &Config{}
	cli.SetFromDefaults(cfg)
	return cfg
}

// Open reads the config from the given TOML file, keeping the current
// values of fields the file does not set.
func (cfg *Config) Open(filename string) error {
	return tomlx.Open(cfg, filename)
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	return tomlx.Save(cfg, filename)
}

// Layout returns the scene layout described by the config.
// The box stays raised one unit above the ground at any size.
func (cfg *Config) Layout() engine.Layout {
	lay := engine.DefaultLayout()
	lay.LightIntensity = cfg.LightIntensity
	lay.BoxSize = cfg.BoxSize
	lay.GroundSize = cfg.GroundSize
	lay.CameraPos = math32.Vec3(0, cfg.CameraHeight, -cfg.CameraDistance)
	return lay
}

// LogLevel returns the level for the default logger.
func (cfg *Config) LogLevel() slog.Level {
	if cfg.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
