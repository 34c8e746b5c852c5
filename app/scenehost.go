// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/boxscene/boxscene/engine"
	"github.com/boxscene/boxscene/host"
	"github.com/boxscene/boxscene/xyzengine"
)

// SceneHost renders one 3D drawing surface filling its container.
// The scene is created when the surface is first shown and released
// when the SceneHost is destroyed.
type SceneHost struct {
	core.Frame

	// Layout is the static scene content.
	Layout engine.Layout

	// Factory makes the engine on the drawing surface.
	Factory engine.Factory `set:"-" display:"-"`

	host    *host.Host
	surface *xyzcore.Scene

	// resize fans window resizes out to the host.
	resize     host.Listeners
	windowSize image.Point
}

func (sh *SceneHost) Init() {
	sh.Frame.Init()
	sh.Layout = engine.DefaultLayout()
	sh.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
		s.Min.Set(units.Pw(100), units.Vh(100))
		s.Padding.Zero()
		s.Gap.Zero()
	})

	tree.AddChildAt(sh, "surface", func(w *xyzcore.Scene) {
		sh.surface = w
		w.Styler(func(s *styles.Style) {
			s.Grow.Set(1, 1)
			s.Border.Width.Zero()
			s.MaxBorder.Width.Zero()
		})
		w.OnShow(func(e events.Event) {
			sh.attach()
		})
		w.Updater(sh.checkWindowSize)
	})
}

// Host returns the lifecycle host, or nil before the surface is shown.
func (sh *SceneHost) Host() *host.Host {
	return sh.host
}

func (sh *SceneHost) attach() {
	sh.attachSurface(&xyzengine.Surface{Widget: sh.surface})
}

func (sh *SceneHost) attachSurface(surf engine.Surface) {
	if sh.host == nil {
		factory := sh.Factory
		if factory == nil {
			factory = &xyzengine.Factory{}
		}
		sh.host = host.New(factory, &sh.resize, sh.Layout, slog.Default())
	}
	err := errors.Log(sh.host.Attach(surf))
	if err != nil {
		core.ErrorSnackbar(sh, err, "Error creating 3D scene")
	}
}

// checkWindowSize reports a resize when the size of the window's scene
// changed since the last update.
func (sh *SceneHost) checkWindowSize() {
	sc := sh.WidgetBase.Scene
	if sc == nil {
		return
	}
	sz := sc.SceneGeom.Size
	if sz == sh.windowSize {
		return
	}
	first := sh.windowSize == (image.Point{})
	sh.windowSize = sz
	if !first {
		sh.resize.Resized()
	}
}

func (sh *SceneHost) Destroy() {
	if sh.host != nil {
		sh.host.Detach()
	}
	sh.Frame.Destroy()
}
