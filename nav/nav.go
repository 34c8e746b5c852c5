// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav provides free-camera navigation: the directions a camera
// can be moved in, the keys bound to each direction, and the translation
// applied for one key press.
package nav

import (
	"slices"

	"cogentcore.org/core/events/key"
)

// Directions are the four directions a free camera translates in.
type Directions int32

const (
	// Forward moves along the view direction.
	Forward Directions = iota

	// Backward moves against the view direction.
	Backward

	// Left moves against the right vector.
	Left

	// Right moves along the right vector (view direction × up).
	Right

	// DirectionsN is the number of directions.
	DirectionsN
)

var directionNames = [...]string{"Forward", "Backward", "Left", "Right"}

func (d Directions) String() string {
	if d < 0 || d >= DirectionsN {
		return "Directions(invalid)"
	}
	return directionNames[d]
}

// Bindings maps each direction to the key codes that move the camera in it.
type Bindings map[Directions][]key.Codes

// DefaultKeys returns the engine's own navigation keys: the arrow keys.
func DefaultKeys() Bindings {
	return Bindings{
		Forward:  {key.CodeUpArrow},
		Backward: {key.CodeDownArrow},
		Left:     {key.CodeLeftArrow},
		Right:    {key.CodeRightArrow},
	}
}

// MovementKeys returns the four standard movement keys (W, S, A, D).
func MovementKeys() Bindings {
	return Bindings{
		Forward:  {key.CodeW},
		Backward: {key.CodeS},
		Left:     {key.CodeA},
		Right:    {key.CodeD},
	}
}

// Clone returns a deep copy of the bindings.
func (b Bindings) Clone() Bindings {
	cb := make(Bindings, len(b))
	for d, codes := range b {
		cb[d] = slices.Clone(codes)
	}
	return cb
}

// Merge adds every key of other to b, skipping keys b already has
// for the same direction. It returns b, or a new map if b is nil.
func (b Bindings) Merge(other Bindings) Bindings {
	if b == nil {
		b = make(Bindings, len(other))
	}
	for d := Forward; d < DirectionsN; d++ {
		for _, c := range other[d] {
			if !slices.Contains(b[d], c) {
				b[d] = append(b[d], c)
			}
		}
	}
	return b
}

// Direction returns the direction bound to the given key code.
// The first matching direction in [Directions] order wins.
func (b Bindings) Direction(code key.Codes) (Directions, bool) {
	for d := Forward; d < DirectionsN; d++ {
		if slices.Contains(b[d], code) {
			return d, true
		}
	}
	return 0, false
}

// Codes returns the set of all bound key codes.
func (b Bindings) Codes() map[key.Codes]struct{} {
	cs := make(map[key.Codes]struct{})
	for _, codes := range b {
		for _, c := range codes {
			cs[c] = struct{}{}
		}
	}
	return cs
}

// Contains reports whether every key of other is bound to the same
// direction in b.
func (b Bindings) Contains(other Bindings) bool {
	for d, codes := range other {
		for _, c := range codes {
			if !slices.Contains(b[d], c) {
				return false
			}
		}
	}
	return true
}
