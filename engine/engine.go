// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine defines the part of a 3D rendering engine that the
// scene host consumes: an engine bound to a drawing surface, a scene
// made from the engine, and the camera, light and mesh factories of
// that scene. Implementations live in other packages (see xyzengine).
package engine

import (
	"errors"

	"cogentcore.org/core/math32"
	"github.com/boxscene/boxscene/nav"
)

// ErrDisposed is returned when a disposed engine is asked for a new scene.
var ErrDisposed = errors.New("engine: disposed")

// Surface is the UI element an engine draws into.
type Surface interface {

	// Available reports whether the surface exists and can be drawn into.
	Available() bool
}

// Factory makes engines bound to drawing surfaces.
type Factory interface {
	NewEngine(surf Surface) (Engine, error)
}

// Engine binds a rendering backend to one drawing surface and owns the
// render loop.
type Engine interface {

	// NewScene returns a new empty scene rendered by this engine.
	NewScene() (Scene, error)

	// RunRenderLoop calls frame once per display refresh until the
	// engine is disposed.
	RunRenderLoop(frame func())

	// Resize recomputes the output dimensions from the surface.
	Resize()

	// Dispose releases the engine. Its render loop stops.
	Dispose()
}

// Scene holds the camera, lights and meshes of one rendering session.
// Everything made from a scene is released when the scene is disposed.
type Scene interface {
	NewCamera(name string, pos math32.Vector3) Camera

	// NewLight adds a directional light shining from dir.
	NewLight(name string, dir math32.Vector3, intensity float32)

	// NewBox adds a cube with the given edge length centered on the origin.
	NewBox(name string, size float32) Mesh

	// NewGround adds a horizontal plane centered on the origin.
	NewGround(name string, width, depth float32) Mesh

	// Render draws the current scene state.
	Render()

	Dispose()
}

// Camera is a free camera driven by keyboard and pointer.
type Camera interface {
	SetTarget(target math32.Vector3)

	// Keys returns the current navigation key bindings.
	Keys() nav.Bindings

	// AddKeys extends the navigation key bindings.
	AddKeys(keys nav.Bindings)

	// AttachControl makes the camera respond to input on the surface.
	AttachControl()
}

// Mesh is a primitive placed in a scene.
type Mesh interface {
	SetPosition(pos math32.Vector3)
}
