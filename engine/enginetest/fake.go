// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enginetest provides an in-memory [engine.Factory] that records
// every call, for testing code that drives an engine.
package enginetest

import (
	"cogentcore.org/core/math32"
	"github.com/boxscene/boxscene/engine"
	"github.com/boxscene/boxscene/nav"
)

// Surface is a drawing surface whose availability is set directly.
type Surface struct {
	Ready bool
}

func (s *Surface) Available() bool { return s != nil && s.Ready }

// Factory records the engines it makes and the order of all calls made
// on them and their scenes.
type Factory struct {

	// Err, if set, is returned by NewEngine.
	Err error

	// SceneErr, if set, is returned by NewScene of every engine made.
	SceneErr error

	// Engines are all engines made, in order.
	Engines []*Engine

	// Calls is the log of calls, such as "engine.new" or "scene.dispose".
	Calls []string
}

func (f *Factory) log(call string) { f.Calls = append(f.Calls, call) }

func (f *Factory) NewEngine(surf engine.Surface) (engine.Engine, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	e := &Engine{factory: f, Surface: surf}
	f.Engines = append(f.Engines, e)
	f.log("engine.new")
	return e, nil
}

// Last returns the most recently made engine, or nil.
func (f *Factory) Last() *Engine {
	if len(f.Engines) == 0 {
		return nil
	}
	return f.Engines[len(f.Engines)-1]
}

// Engine is a fake [engine.Engine].
type Engine struct {
	factory *Factory

	Surface engine.Surface

	// Scenes are all scenes made by this engine.
	Scenes []*Scene

	// Loop is the registered render loop callback.
	Loop func()

	Resizes  int
	Disposed int
}

func (e *Engine) NewScene() (engine.Scene, error) {
	if e.Disposed > 0 {
		return nil, engine.ErrDisposed
	}
	if e.factory.SceneErr != nil {
		return nil, e.factory.SceneErr
	}
	sc := &Scene{engine: e, Meshes: map[string]*Mesh{}}
	e.Scenes = append(e.Scenes, sc)
	e.factory.log("scene.new")
	return sc, nil
}

func (e *Engine) RunRenderLoop(frame func()) {
	e.Loop = frame
	e.factory.log("engine.loop")
}

// Tick simulates one display refresh. It does nothing once disposed.
func (e *Engine) Tick() {
	if e.Loop == nil || e.Disposed > 0 {
		return
	}
	e.Loop()
}

func (e *Engine) Resize() {
	e.Resizes++
	e.factory.log("engine.resize")
}

func (e *Engine) Dispose() {
	e.Disposed++
	e.factory.log("engine.dispose")
}

// Scene is a fake [engine.Scene].
type Scene struct {
	engine *Engine

	Camera *Camera

	// LightDir and LightIntensity are set by NewLight.
	LightDir       math32.Vector3
	LightIntensity float32
	Lights         int

	Meshes map[string]*Mesh

	Renders  int
	Disposed int
}

func (sc *Scene) NewCamera(name string, pos math32.Vector3) engine.Camera {
	sc.Camera = &Camera{Name: name, Pos: pos, keys: nav.DefaultKeys()}
	return sc.Camera
}

func (sc *Scene) NewLight(name string, dir math32.Vector3, intensity float32) {
	sc.Lights++
	sc.LightDir = dir
	sc.LightIntensity = intensity
}

func (sc *Scene) NewBox(name string, size float32) engine.Mesh {
	m := &Mesh{Kind: "box", Size: math32.Vec3(size, size, size)}
	sc.Meshes[name] = m
	return m
}

func (sc *Scene) NewGround(name string, width, depth float32) engine.Mesh {
	m := &Mesh{Kind: "ground", Size: math32.Vec3(width, 0, depth)}
	sc.Meshes[name] = m
	return m
}

func (sc *Scene) Render() { sc.Renders++ }

func (sc *Scene) Dispose() {
	sc.Disposed++
	sc.engine.factory.log("scene.dispose")
}

// Camera is a fake [engine.Camera] starting with [nav.DefaultKeys].
type Camera struct {
	Name     string
	Pos      math32.Vector3
	Target   math32.Vector3
	Attached bool
	keys     nav.Bindings
}

func (c *Camera) SetTarget(target math32.Vector3) { c.Target = target }

func (c *Camera) Keys() nav.Bindings { return c.keys.Clone() }

func (c *Camera) AddKeys(keys nav.Bindings) { c.keys.Merge(keys) }

func (c *Camera) AttachControl() { c.Attached = true }

// Mesh is a fake [engine.Mesh].
type Mesh struct {
	Kind string
	Size math32.Vector3
	Pos  math32.Vector3
}

func (m *Mesh) SetPosition(pos math32.Vector3) { m.Pos = pos }
