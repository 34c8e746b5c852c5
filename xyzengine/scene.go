// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzengine

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/boxscene/boxscene/engine"
)

// Scene is the content of an [xyz.Scene].
type Scene struct {
	engine *Engine
	xyz    *xyz.Scene
	camera *Camera

	// rebuild is set when lights or meshes changed since the last
	// render, which the GPU resources of a live scene do not follow.
	rebuild bool
}

func (sc *Scene) NewCamera(name string, pos math32.Vector3) engine.Camera {
	sc.xyz.Camera.Pose.Pos = pos
	sc.camera = newCamera(name, sc)
	sc.xyz.SetNeedsUpdate()
	return sc.camera
}

// NewLight adds a directional light; xyz points it from dir at the origin.
func (sc *Scene) NewLight(name string, dir math32.Vector3, intensity float32) {
	lt := xyz.NewDirectional(sc.xyz, name, intensity, xyz.DirectSun)
	lt.Pos = dir
	sc.rebuild = true
}

func (sc *Scene) NewBox(name string, size float32) engine.Mesh {
	ms := xyz.NewBox(sc.xyz, name, size, size, size)
	return sc.newSolid(name, ms)
}

func (sc *Scene) NewGround(name string, width, depth float32) engine.Mesh {
	ms := xyz.NewPlane(sc.xyz, name, width, depth)
	sld := sc.newSolid(name, ms)
	sld.solid.SetColor(colors.Tan)
	return sld
}

func (sc *Scene) newSolid(name string, ms xyz.Mesh) *Mesh {
	sld := xyz.NewSolid(sc.xyz)
	sld.SetName(name)
	sld.SetMesh(ms)
	sc.rebuild = true
	return &Mesh{scene: sc, solid: sld}
}

// Render marks the scene for drawing on the widget's next render.
func (sc *Scene) Render() {
	if sc.rebuild {
		sc.xyz.Rebuild()
		sc.rebuild = false
		sc.xyz.SetNeedsUpdate()
	}
	sc.xyz.SetNeedsRender()
}

// Dispose removes every node, mesh and light made from this scene
// and unbinds the camera from input.
func (sc *Scene) Dispose() {
	if sc.camera != nil {
		sc.camera.detach()
		sc.camera = nil
	}
	sc.xyz.DeleteChildren()
	sc.xyz.ResetMeshes()
	sc.xyz.Lights.Reset()
	sc.xyz.Rebuild()
}

// Mesh is a solid placed in a [Scene].
type Mesh struct {
	scene *Scene
	solid *xyz.Solid
}

func (m *Mesh) SetPosition(pos math32.Vector3) {
	m.solid.SetPos(pos.X, pos.Y, pos.Z)
	m.scene.xyz.SetNeedsUpdate()
}
