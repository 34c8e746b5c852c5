// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"cogentcore.org/core/math32"
	"github.com/boxscene/boxscene/nav"
)

// Layout describes the static content of the scene.
type Layout struct {

	// CameraPos is where the free camera starts.
	CameraPos math32.Vector3

	// CameraTarget is the point the camera is aimed at.
	CameraTarget math32.Vector3

	// LightDir is the direction the light shines from.
	LightDir math32.Vector3

	// LightIntensity is the fixed light intensity.
	LightIntensity float32

	// BoxSize is the edge length of the box.
	BoxSize float32

	// BoxHeight is how far the box center is raised above the ground.
	BoxHeight float32

	// GroundSize is the width and depth of the ground plane.
	GroundSize float32
}

// DefaultLayout returns the standard scene: camera above and behind the
// origin, a light from above, a box one unit above a ground plane.
func DefaultLayout() Layout {
	return Layout{
		CameraPos:      math32.Vec3(0, 5, -10),
		CameraTarget:   math32.Vec3(0, 0, 0),
		LightDir:       math32.Vec3(0, 1, 0),
		LightIntensity: 0.7,
		BoxSize:        2,
		BoxHeight:      1,
		GroundSize:     6,
	}
}

// Build adds the static content described by lay to sc and returns the
// camera, with its keys extended by [nav.MovementKeys] and its input
// control attached.
func Build(sc Scene, lay Layout) Camera {
	cam := sc.NewCamera("camera", lay.CameraPos)
	cam.SetTarget(lay.CameraTarget)
	cam.AddKeys(nav.MovementKeys())
	cam.AttachControl()

	sc.NewLight("light", lay.LightDir, lay.LightIntensity)

	box := sc.NewBox("box", lay.BoxSize)
	box.SetPosition(math32.Vec3(0, lay.BoxHeight, 0))

	sc.NewGround("ground", lay.GroundSize, lay.GroundSize)
	return cam
}
