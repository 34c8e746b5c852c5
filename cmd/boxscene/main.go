// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command boxscene shows an interactive 3D scene with a box on a ground
// plane. Move the camera with the arrow keys or W, A, S, D and drag to
// look around.
package main

import (
	"log/slog"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"github.com/boxscene/boxscene/app"
	"github.com/boxscene/boxscene/config"
	"github.com/boxscene/boxscene/xyzengine"
)

func main() {
	opts := cli.DefaultOptions("boxscene", "An interactive 3D scene with a box on a ground plane.")
	opts.DefaultFiles = []string{config.Filename}
	cli.Run(opts, config.New(), Run)
}

// Run opens the main window with the scene.
func Run(cfg *config.Config) error { //cli:cmd -root
	slog.SetLogLoggerLevel(cfg.LogLevel())

	b := core.NewBody(cfg.Title)
	b.Styler(func(s *styles.Style) {
		s.Padding.Zero()
		s.Gap.Zero()
	})
	rt := app.NewRoot(b).SetLayout(cfg.Layout())
	rt.Factory = &xyzengine.Factory{MoveStep: cfg.MoveStep}
	b.RunMainWindow()
	return nil
}
