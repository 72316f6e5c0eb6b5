// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"fmt"

	"cogentcore.org/orbit/math32"
)

// Vector is the set of vector operations that the physics needs,
// implemented by [math32.Vector2] and [math32.Vector3].
type Vector[V any] interface {
	Add(other V) V
	Sub(other V) V
	MulScalar(s float32) V
	DivScalar(s float32) V
	Length() float32
	LengthSquared() float32
	Normal() V
}

// Transform contains the physical state of a body: position,
// orientation and velocity, in V-dimensional space.
type Transform[V Vector[V], R math32.Rotor[V]] struct {

	// position of center of mass
	Position V

	// linear velocity
	Velocity V

	// orientation, as a rotor
	Rotation R
}

// Transform2 is a 2D [Transform].
type Transform2 = Transform[math32.Vector2, math32.Rotor2]

// Transform3 is a 3D [Transform].
type Transform3 = Transform[math32.Vector3, math32.Rotor3]

// Apply returns the world position of the given point in
// the local frame of the transform.
func (tr *Transform[V, R]) Apply(local V) V {
	return tr.Position.Add(tr.Rotation.Rotate(local))
}

// StepByVelocity steps the position from the velocity.
func (tr *Transform[V, R]) StepByVelocity(dt float32) {
	tr.Position = tr.Position.Add(tr.Velocity.MulScalar(dt))
}

// Move translates the position by the given amount, and sets the
// velocity to the given delta, which can be useful for scripted
// motion to track movement.
func (tr *Transform[V, R]) Move(delta V) {
	tr.Velocity = delta
	tr.Position = tr.Position.Add(delta)
}

func (tr *Transform[V, R]) String() string {
	return fmt.Sprintf("Pos: %v, Vel: %v", tr.Position, tr.Velocity)
}
