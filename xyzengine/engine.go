// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzengine implements the engine contract with the Cogent Core
// xyz 3D scene graph, drawing into an [xyzcore.Scene] widget.
package xyzengine

import (
	"fmt"

	"cogentcore.org/core/core"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/boxscene/boxscene/engine"
)

// Surface is the drawing surface of an [xyzcore.Scene] widget.
type Surface struct {
	Widget *xyzcore.Scene
}

// Available reports whether the widget is shown in a render window,
// which is what provides its GPU surface.
func (s *Surface) Available() bool {
	if s == nil || s.Widget == nil || s.Widget.WidgetBase.Scene == nil {
		return false
	}
	return s.Widget.WidgetBase.Scene.Events.RenderWindow() != nil
}

// Factory makes engines on [Surface] values.
type Factory struct {

	// MoveStep is how far cameras move per navigation key press.
	MoveStep float32
}

func (f *Factory) NewEngine(surf engine.Surface) (engine.Engine, error) {
	s, ok := surf.(*Surface)
	if !ok {
		return nil, fmt.Errorf("xyzengine: unsupported surface %T", surf)
	}
	if s.Widget == nil || s.Widget.XYZ == nil {
		return nil, fmt.Errorf("xyzengine: surface has no xyz scene")
	}
	step := f.MoveStep
	if step <= 0 {
		step = 0.5
	}
	return &Engine{widget: s.Widget, step: step}, nil
}

// Engine renders through one [xyzcore.Scene] widget. The GPU frame
// belongs to the widget and is released when the widget is destroyed.
type Engine struct {
	widget   *xyzcore.Scene
	step     float32
	scene    *Scene
	disposed bool
}

func (e *Engine) NewScene() (engine.Scene, error) {
	if e.disposed {
		return nil, engine.ErrDisposed
	}
	e.scene = &Scene{engine: e, xyz: e.widget.XYZ}
	return e.scene, nil
}

// RunRenderLoop runs frame on every paint tick of the widget's scene.
// The animation ends on the first tick after [Engine.Dispose].
func (e *Engine) RunRenderLoop(frame func()) {
	e.widget.Animate(func(a *core.Animation) {
		if e.disposed {
			a.Done = true
			return
		}
		frame()
		e.widget.NeedsRender()
	})
}

// Resize has the widget lay itself out again, which reconfigures the
// xyz frame to the new content size.
func (e *Engine) Resize() {
	if e.disposed {
		return
	}
	e.widget.NeedsLayout()
}

func (e *Engine) Dispose() {
	e.disposed = true
	e.scene = nil
}
