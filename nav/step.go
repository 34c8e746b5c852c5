// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import "cogentcore.org/core/math32"

// Step returns the camera position and target after moving dist units
// in the given direction. Position and target move together, so the
// view direction is unchanged. Forward and Backward follow the view
// vector; Left and Right follow view × up. A degenerate view (position
// equal to target) leaves both unchanged.
func Step(pos, target, up math32.Vector3, dir Directions, dist float32) (math32.Vector3, math32.Vector3) {
	view := target.Sub(pos)
	if view.Length() == 0 {
		return pos, target
	}
	view = view.Normal()
	var del math32.Vector3
	switch dir {
	case Forward:
		del = view.MulScalar(dist)
	case Backward:
		del = view.MulScalar(-dist)
	case Left, Right:
		right := view.Cross(up)
		if right.Length() == 0 {
			return pos, target
		}
		right = right.Normal()
		if dir == Left {
			dist = -dist
		}
		del = right.MulScalar(dist)
	default:
		return pos, target
	}
	return pos.Add(del), target.Add(del)
}
