// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app provides the widgets of the boxscene application:
// a full-viewport [Root] hosting a single 3D [SceneHost].
package app

//go:generate core generate

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"github.com/boxscene/boxscene/engine"
	"github.com/boxscene/boxscene/xyzengine"
)

// Root occupies the full viewport and hosts exactly one [SceneHost].
type Root struct {
	core.Frame

	// Layout is the static scene content passed to the scene host.
	Layout engine.Layout

	// Factory makes the engine for the scene host.
	Factory engine.Factory `set:"-" display:"-"`
}

func (rt *Root) Init() {
	rt.Frame.Init()
	rt.Layout = engine.DefaultLayout()
	rt.Factory = &xyzengine.Factory{}
	rt.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
		s.Min.Set(units.Vw(100), units.Vh(100))
		s.Margin.Zero()
		s.Padding.Zero()
		s.Gap.Zero()
	})

	tree.AddChildAt(rt, "scene-host", func(w *SceneHost) {
		w.Updater(func() {
			w.Layout = rt.Layout
			w.Factory = rt.Factory
		})
	})
}

// SceneHost returns the scene host child, or nil before the first update.
func (rt *Root) SceneHost() *SceneHost {
	sh, _ := rt.ChildByName("scene-host", 0).(*SceneHost)
	return sh
}
