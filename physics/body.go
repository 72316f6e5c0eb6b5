// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"fmt"

	"cogentcore.org/orbit/math32"
)

// BodyKinds are the kinds of bodies.
type BodyKinds int32

const (
	// Kinematic bodies move only by their velocity,
	// and are not accelerated by gravity.
	Kinematic BodyKinds = iota

	// Dynamic bodies are accelerated by the gravity of other bodies.
	Dynamic
)

func (bk BodyKinds) String() string {
	switch bk {
	case Kinematic:
		return "Kinematic"
	case Dynamic:
		return "Dynamic"
	}
	return "BodyKinds(?)"
}

// Damping has the per-second damping factors of a body.
type Damping struct {
	Linear float32

	// Angular is not currently applied.
	Angular float32
}

// Body is a point mass with an orientation, in V-dimensional space.
type Body[V Vector[V], R math32.Rotor[V]] struct {
	// Name is used for printing.
	Name string

	Kind      BodyKinds
	Transform Transform[V, R]

	// Mass, where a mass below [math32.Epsilon] is massless,
	// like a photon.
	Mass    float32
	Damping Damping
}

// Body2 is a 2D [Body].
type Body2 = Body[math32.Vector2, math32.Rotor2]

// Body3 is a 3D [Body].
type Body3 = Body[math32.Vector3, math32.Rotor3]

// NewBody2 returns a new 2D dynamic body with identity rotation.
func NewBody2(name string, position, velocity math32.Vector2, mass float32) Body2 {
	return Body2{Name: name, Kind: Dynamic, Mass: mass, Transform: Transform2{Position: position, Velocity: velocity, Rotation: math32.Rotor2Identity()}}
}

// NewBody3 returns a new 3D dynamic body with identity rotation.
func NewBody3(name string, position, velocity math32.Vector3, mass float32) Body3 {
	return Body3{Name: name, Kind: Dynamic, Mass: mass, Transform: Transform3{Position: position, Velocity: velocity, Rotation: math32.Rotor3Identity()}}
}

// IsMassless returns whether the mass is below [math32.Epsilon].
func (bd *Body[V, R]) IsMassless() bool {
	return bd.Mass < math32.Epsilon
}

func (bd *Body[V, R]) String() string {
	return fmt.Sprintf("%s - %s, Mass: %g", bd.Name, bd.Transform.String(), bd.Mass)
}
