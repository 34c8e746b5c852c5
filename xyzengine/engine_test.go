// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzengine

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/boxscene/boxscene/engine"
	"github.com/boxscene/boxscene/engine/enginetest"
	"github.com/boxscene/boxscene/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceAvailable(t *testing.T) {
	var s *Surface
	assert.False(t, s.Available())
	assert.False(t, (&Surface{}).Available())
}

func TestFactoryRejectsForeignSurface(t *testing.T) {
	f := &Factory{}
	_, err := f.NewEngine(&enginetest.Surface{Ready: true})
	assert.ErrorContains(t, err, "unsupported surface")
}

// newTestScene returns a scene over an xyz scene with no GPU frame and
// no widget, which is enough to build and move content.
func newTestScene() (*Engine, *Scene) {
	e := &Engine{step: 1}
	sc := &Scene{engine: e, xyz: xyz.NewScene()}
	e.scene = sc
	return e, sc
}

func TestSceneContent(t *testing.T) {
	_, sc := newTestScene()
	xs := sc.xyz

	cam := sc.NewCamera("camera", math32.Vec3(0, 5, -10))
	cam.SetTarget(math32.Vec3(0, 0, 0))
	assert.Equal(t, math32.Vec3(0, 5, -10), xs.Camera.Pose.Pos)
	assert.Equal(t, math32.Vec3(0, 0, 0), xs.Camera.Target)

	sc.NewLight("light", math32.Vec3(0, 1, 0), 0.7)
	box := sc.NewBox("box", 2)
	box.SetPosition(math32.Vec3(0, 1, 0))
	sc.NewGround("ground", 6, 6)

	assert.Equal(t, 1, xs.Lights.Len())
	assert.Equal(t, 2, xs.Meshes.Len())
	assert.Equal(t, 2, xs.NumChildren())
	sld, ok := xs.ChildByName("box", 0).(*xyz.Solid)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0, 1, 0), sld.Pose.Pos)
	assert.True(t, sc.rebuild)

	sc.Render()
	assert.False(t, sc.rebuild)
	assert.True(t, xs.NeedsRender)

	sc.Dispose()
	assert.Equal(t, 0, xs.Lights.Len())
	assert.Equal(t, 0, xs.Meshes.Len())
	assert.Equal(t, 0, xs.NumChildren())
}

func TestCameraMove(t *testing.T) {
	_, sc := newTestScene()
	cami := sc.NewCamera("camera", math32.Vec3(0, 0, 10))
	cami.SetTarget(math32.Vec3(0, 0, 0))
	cam := cami.(*Camera)

	cam.AddKeys(nav.MovementKeys())
	assert.True(t, cam.Keys().Contains(nav.DefaultKeys()))
	assert.True(t, cam.Keys().Contains(nav.MovementKeys()))

	cam.move(nav.Forward)
	assert.InDelta(t, 9, sc.xyz.Camera.Pose.Pos.Z, 1e-5)
	assert.InDelta(t, -1, sc.xyz.Camera.Target.Z, 1e-5)

	cam.move(nav.Right)
	assert.InDelta(t, 1, sc.xyz.Camera.Pose.Pos.X, 1e-5)
}

func TestDisposedEngine(t *testing.T) {
	e, _ := newTestScene()
	e.Dispose()
	_, err := e.NewScene()
	assert.ErrorIs(t, err, engine.ErrDisposed)

	// no widget is touched once disposed
	e.Resize()
}
