// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"cogentcore.org/orbit/math32"
	"github.com/stretchr/testify/assert"
)

func TestTransformApply(t *testing.T) {
	tr := Transform3{
		Position: math32.Vec3(1, 0, 0),
		Rotation: math32.NewRotor3AxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(90)),
	}
	p := tr.Apply(math32.Vec3(1, 0, 0))
	assert.InDelta(t, 1, p.X, tol)
	assert.InDelta(t, 1, p.Y, tol)
	assert.InDelta(t, 0, p.Z, tol)

	tr2 := Transform2{Position: math32.Vec2(0, 2), Rotation: math32.Rotor2Identity()}
	assert.Equal(t, math32.Vec2(3, 2), tr2.Apply(math32.Vec2(3, 0)))
}

func TestTransformMove(t *testing.T) {
	bd := NewBody2("box", math32.Vec2(1, 1), math32.Vec2(0, 0), 1)
	bd.Transform.Move(math32.Vec2(2, 0))
	assert.Equal(t, math32.Vec2(3, 1), bd.Transform.Position)
	assert.Equal(t, math32.Vec2(2, 0), bd.Transform.Velocity)
	assert.Equal(t, "box - Pos: (3, 1), Vel: (2, 0), Mass: 1", bd.String())
	assert.Equal(t, "Dynamic", bd.Kind.String())
	assert.False(t, bd.IsMassless())
}
