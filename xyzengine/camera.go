// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzengine

import (
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"github.com/boxscene/boxscene/nav"
)

// Camera is a free camera over the [xyz.Scene] camera. Bound keys
// translate it; pointer drag keeps the widget's default orbit.
type Camera struct {
	name     string
	scene    *Scene
	keys     nav.Bindings
	attached bool
	detached bool
}

func newCamera(name string, sc *Scene) *Camera {
	return &Camera{name: name, scene: sc, keys: nav.DefaultKeys()}
}

func (c *Camera) SetTarget(target math32.Vector3) {
	xs := c.scene.xyz
	xs.Camera.LookAt(target, math32.Vec3(0, 1, 0))
	xs.SaveCamera("default")
	xs.SetNeedsUpdate()
}

func (c *Camera) Keys() nav.Bindings { return c.keys.Clone() }

func (c *Camera) AddKeys(keys nav.Bindings) { c.keys.Merge(keys) }

// AttachControl handles key chords on the widget for all bound keys.
// The handler is added last, so it runs before the widget's own
// navigation and takes over the arrow keys.
func (c *Camera) AttachControl() {
	if c.attached {
		return
	}
	c.attached = true
	w := c.scene.engine.widget
	w.On(events.KeyChord, func(e events.Event) {
		if c.detached {
			return
		}
		d, ok := c.keys.Direction(e.KeyCode())
		if !ok {
			return
		}
		e.SetHandled()
		c.move(d)
		w.NeedsRender()
	})
}

func (c *Camera) move(d nav.Directions) {
	xs := c.scene.xyz
	cam := &xs.Camera
	cam.Pose.Pos, cam.Target = nav.Step(cam.Pose.Pos, cam.Target, cam.UpDir, d, c.scene.engine.step)
	cam.LookAt(cam.Target, cam.UpDir)
	xs.SetNeedsUpdate()
}

// detach stops the camera from responding to input. Widget listeners
// cannot be removed, so the handler stays but does nothing.
func (c *Camera) detach() {
	c.detached = true
}
