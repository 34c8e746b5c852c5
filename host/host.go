// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host manages the lifecycle of a 3D scene attached to a
// drawing surface: creating the engine and scene, starting the render
// loop and following window resizes on attach, and releasing all of it
// in reverse order on detach.
package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boxscene/boxscene/engine"
	"github.com/looplab/fsm"
)

// Lifecycle states of a [Host].
const (
	// Unattached is the initial state: no engine, no scene, no listener.
	Unattached = "unattached"

	// Attached means the engine and scene exist and are rendering.
	Attached = "attached"

	// Teardown is entered while releasing an attached scene.
	Teardown = "teardown"
)

const (
	eventAttach = "attach"
	eventDetach = "detach"
	eventReset  = "reset"
)

// Window is the host environment's window, which reports resizes.
type Window interface {

	// OnResize registers fun to be called on every window resize
	// and returns a function that removes it.
	OnResize(fun func()) (remove func())
}

// Host owns the engine and scene of one scene host for the duration
// of its attachment. It must be used from one goroutine.
type Host struct {
	factory engine.Factory
	window  Window
	layout  engine.Layout
	logger  *slog.Logger
	state   *fsm.FSM

	engine       engine.Engine
	scene        engine.Scene
	camera       engine.Camera
	removeResize func()

	frames uint64
}

// New returns an unattached host that makes engines with factory,
// follows resizes of window, and builds scenes from layout.
// A nil logger uses [slog.Default].
func New(factory engine.Factory, window Window, layout engine.Layout, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Host{factory: factory, window: window, layout: layout, logger: logger}
	h.state = fsm.NewFSM(Unattached, fsm.Events{
		{Name: eventAttach, Src: []string{Unattached}, Dst: Attached},
		{Name: eventDetach, Src: []string{Attached}, Dst: Teardown},
		{Name: eventReset, Src: []string{Teardown}, Dst: Unattached},
	}, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			h.logger.Debug("scene host state", "from", e.Src, "to", e.Dst)
		},
	})
	return h
}

// State returns the current lifecycle state.
func (h *Host) State() string {
	return h.state.Current()
}

// Attached reports whether the host has a live engine and scene.
func (h *Host) Attached() bool {
	return h.state.Is(Attached)
}

// Frames returns the number of frames rendered since the host was made.
func (h *Host) Frames() uint64 {
	return h.frames
}

// Camera returns the camera of the attached scene, or nil.
func (h *Host) Camera() engine.Camera {
	return h.camera
}

// Attach creates the engine and scene on surf, builds the static
// content, starts the render loop and starts following window resizes.
// It does nothing if surf is not available or the host is already
// attached. Errors from the engine are returned as is, wrapped.
func (h *Host) Attach(surf engine.Surface) error {
	if !h.state.Can(eventAttach) {
		return nil
	}
	if surf == nil || !surf.Available() {
		h.logger.Debug("scene host: no drawing surface, skipping setup")
		return nil
	}
	eng, err := h.factory.NewEngine(surf)
	if err != nil {
		return fmt.Errorf("host: creating engine: %w", err)
	}
	sc, err := eng.NewScene()
	if err != nil {
		eng.Dispose()
		return fmt.Errorf("host: creating scene: %w", err)
	}
	h.engine = eng
	h.scene = sc
	h.camera = engine.Build(sc, h.layout)

	eng.RunRenderLoop(func() {
		sc.Render()
		h.frames++
	})
	h.removeResize = h.window.OnResize(eng.Resize)
	h.event(eventAttach)
	return nil
}

// Detach removes the resize listener, then disposes the scene and then
// the engine. It does nothing if the host is not attached. A later
// [Host.Attach] starts over with a new engine and scene.
func (h *Host) Detach() {
	if !h.state.Can(eventDetach) {
		return
	}
	h.event(eventDetach)
	if h.removeResize != nil {
		h.removeResize()
	}
	h.scene.Dispose()
	h.engine.Dispose()
	h.removeResize = nil
	h.camera = nil
	h.scene = nil
	h.engine = nil
	h.event(eventReset)
}

func (h *Host) event(name string) {
	if err := h.state.Event(context.Background(), name); err != nil {
		h.logger.Error("scene host state transition", "event", name, "err", err)
	}
}
