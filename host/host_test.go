// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"testing"

	"github.com/boxscene/boxscene/engine"
	"github.com/boxscene/boxscene/engine/enginetest"
	"github.com/boxscene/boxscene/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost() (*Host, *enginetest.Factory, *Listeners) {
	f := &enginetest.Factory{}
	w := &Listeners{}
	return New(f, w, engine.DefaultLayout(), nil), f, w
}

// loggedWindow records listener removal in the factory call log.
type loggedWindow struct {
	Listeners
	factory *enginetest.Factory
}

func (w *loggedWindow) OnResize(fun func()) func() {
	remove := w.Listeners.OnResize(fun)
	return func() {
		w.factory.Calls = append(w.factory.Calls, "window.remove")
		remove()
	}
}

func surface() *enginetest.Surface {
	return &enginetest.Surface{Ready: true}
}

func TestAttachStartsRendering(t *testing.T) {
	h, f, w := newTestHost()
	assert.Equal(t, Unattached, h.State())

	require.NoError(t, h.Attach(surface()))
	assert.Equal(t, Attached, h.State())
	assert.True(t, h.Attached())
	require.Len(t, f.Engines, 1)
	e := f.Last()
	require.Len(t, e.Scenes, 1)
	assert.Equal(t, 1, w.Len())

	assert.Equal(t, uint64(0), h.Frames())
	e.Tick()
	assert.GreaterOrEqual(t, h.Frames(), uint64(1))
	assert.Equal(t, 1, e.Scenes[0].Renders)

	assert.Equal(t, []string{"engine.new", "scene.new", "engine.loop"}, f.Calls)
}

func TestDetachOrder(t *testing.T) {
	h, f, w := newTestHost()
	require.NoError(t, h.Attach(surface()))
	e := f.Last()
	sc := e.Scenes[0]

	h.Detach()
	assert.Equal(t, Unattached, h.State())
	assert.Nil(t, h.Camera())
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 1, sc.Disposed)
	assert.Equal(t, 1, e.Disposed)
	assert.Equal(t, []string{"engine.new", "scene.new", "engine.loop", "scene.dispose", "engine.dispose"}, f.Calls)

	w.Resized()
	assert.Equal(t, 0, e.Resizes)

	// a second detach is a no-op
	h.Detach()
	assert.Equal(t, 1, sc.Disposed)
	assert.Equal(t, 1, e.Disposed)
}

func TestDetachRemovesListenerFirst(t *testing.T) {
	f := &enginetest.Factory{}
	w := &loggedWindow{factory: f}
	h := New(f, w, engine.DefaultLayout(), nil)
	require.NoError(t, h.Attach(surface()))
	assert.Equal(t, 1, w.Len())

	h.Detach()
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, []string{"engine.new", "scene.new", "engine.loop", "window.remove", "scene.dispose", "engine.dispose"}, f.Calls)
}

func TestAttachWithoutSurface(t *testing.T) {
	h, f, w := newTestHost()

	require.NoError(t, h.Attach(nil))
	require.NoError(t, h.Attach(&enginetest.Surface{}))
	var nilSurf *enginetest.Surface
	require.NoError(t, h.Attach(nilSurf))

	assert.Equal(t, Unattached, h.State())
	assert.Empty(t, f.Engines)
	assert.Empty(t, f.Calls)
	assert.Equal(t, 0, w.Len())

	// detach of a skipped attach disposes nothing
	h.Detach()
	assert.Empty(t, f.Calls)
}

func TestRemount(t *testing.T) {
	h, f, w := newTestHost()
	require.NoError(t, h.Attach(surface()))
	first := f.Last()
	first.Tick()
	h.Detach()

	require.NoError(t, h.Attach(surface()))
	require.Len(t, f.Engines, 2)
	second := f.Last()
	assert.NotSame(t, first, second)
	require.Len(t, second.Scenes, 1)
	assert.Equal(t, 1, w.Len())

	before := h.Frames()
	second.Tick()
	assert.Equal(t, before+1, h.Frames())

	// the old engine is stopped and stays disposed exactly once
	first.Tick()
	assert.Equal(t, before+1, h.Frames())
	w.Resized()
	assert.Equal(t, 0, first.Resizes)
	assert.Equal(t, 1, second.Resizes)

	h.Detach()
	assert.Equal(t, 1, first.Disposed)
	assert.Equal(t, 1, first.Scenes[0].Disposed)
	assert.Equal(t, 1, second.Disposed)
	assert.Equal(t, 1, second.Scenes[0].Disposed)
}

func TestCameraKeys(t *testing.T) {
	h, _, _ := newTestHost()
	require.NoError(t, h.Attach(surface()))
	cam := h.Camera()
	require.NotNil(t, cam)

	want := nav.DefaultKeys().Merge(nav.MovementKeys())
	have := cam.Keys().Codes()
	for code := range want.Codes() {
		assert.Contains(t, have, code)
	}
	assert.True(t, cam.Keys().Contains(want))
}

func TestResize(t *testing.T) {
	h, f, w := newTestHost()
	require.NoError(t, h.Attach(surface()))
	e := f.Last()

	w.Resized()
	assert.Equal(t, 1, e.Resizes)
	w.Resized()
	w.Resized()
	assert.Equal(t, 3, e.Resizes)

	h.Detach()
	w.Resized()
	assert.Equal(t, 3, e.Resizes)
}

func TestAttachTwice(t *testing.T) {
	h, f, w := newTestHost()
	require.NoError(t, h.Attach(surface()))
	require.NoError(t, h.Attach(surface()))
	assert.Len(t, f.Engines, 1)
	assert.Equal(t, 1, w.Len())
}

func TestEngineError(t *testing.T) {
	h, f, w := newTestHost()
	f.Err = errors.New("no gpu")

	err := h.Attach(surface())
	require.Error(t, err)
	assert.ErrorIs(t, err, f.Err)
	assert.Equal(t, Unattached, h.State())
	assert.Equal(t, 0, w.Len())

	// a later attach can still succeed
	f.Err = nil
	require.NoError(t, h.Attach(surface()))
	assert.True(t, h.Attached())
}

func TestSceneErrorReleasesEngine(t *testing.T) {
	h, f, w := newTestHost()
	f.SceneErr = errors.New("out of memory")

	err := h.Attach(surface())
	assert.ErrorIs(t, err, f.SceneErr)
	require.Len(t, f.Engines, 1)
	assert.Equal(t, 1, f.Last().Disposed)
	assert.Equal(t, Unattached, h.State())
	assert.Equal(t, 0, w.Len())
}
