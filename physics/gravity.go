// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics is a toy n-body gravity simulation, generic over
// 2D and 3D space.
//
// Gravity is applied by [Accelerate], which adds the pull of every
// body to the velocity of each [Dynamic] body, and motion by [Integrate],
// a damped explicit Euler step. Massless bodies, such as photons,
// are pulled as if their mass canceled out of the force.
package physics

import (
	"context"
	"log/slog"

	"cogentcore.org/orbit/math32"
)

const (
	// G is the gravitational constant.
	G = 6.674e-11

	// GravityFactor scales every gravitational pull.
	GravityFactor = 1.0e2

	// MinAcceleration is the length of a pull at or below which it is
	// dropped, so that far away bodies have no effect.
	MinAcceleration = 1e-2
)

// Acceleration returns the pull on a body of the given mass at pos by an
// attractor of the given mass at attractorPos. It is zero when the bodies
// are closer than [math32.Epsilon] squared. The pull on a massive body is
// its force divided by its mass; massless bodies get the same pull
// without the division.
func Acceleration[V Vector[V]](attractorPos V, attractorMass float32, pos V, mass float32) V {
	var zero V
	delta := attractorPos.Sub(pos)
	d2 := delta.LengthSquared()
	if d2 < math32.Epsilon {
		return zero
	}
	dir := delta.Normal()
	pull := G * attractorMass / d2
	if mass < math32.Epsilon {
		return dir.MulScalar(pull * GravityFactor)
	}
	return dir.MulScalar(pull).DivScalar(mass).MulScalar(GravityFactor)
}

// Accelerate adds to the velocity of each [Dynamic] body the pull of
// every other body, skipping pulls of length at most [MinAcceleration].
// Bodies are updated in order, each reading the current positions.
func Accelerate[V Vector[V], R math32.Rotor[V]](bodies []Body[V, R]) {
	for i := range bodies {
		bd := &bodies[i]
		if bd.Kind != Dynamic {
			continue
		}
		for j := range bodies {
			if i == j {
				continue
			}
			ot := &bodies[j]
			acc := Acceleration(ot.Transform.Position, ot.Mass, bd.Transform.Position, bd.Mass)
			if acc.Length() > MinAcceleration {
				bd.Transform.Velocity = bd.Transform.Velocity.Add(acc)
			}
		}
	}
}

// Integrate damps the velocity of every body by its linear damping,
// and then steps its position by its velocity over dt seconds.
func Integrate[V Vector[V], R math32.Rotor[V]](bodies []Body[V, R], dt float32) {
	for i := range bodies {
		bd := &bodies[i]
		bd.Transform.Velocity = bd.Transform.Velocity.MulScalar(1 - bd.Damping.Linear*dt)
		bd.Transform.StepByVelocity(dt)
	}
}

// Step runs [Accelerate] and then [Integrate].
func Step[V Vector[V], R math32.Rotor[V]](bodies []Body[V, R], dt float32) {
	Accelerate(bodies)
	Integrate(bodies, dt)
}

// checkEvery is the number of steps between context checks in [Run].
const checkEvery = 1024

// Run runs the given number of steps of dt seconds, stopping early
// with the context error if the context is canceled.
func Run[V Vector[V], R math32.Rotor[V]](ctx context.Context, bodies []Body[V, R], dt float32, steps int) error {
	for s := range steps {
		if s%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				slog.Debug("physics: run canceled", "step", s, "steps", steps)
				return err
			}
		}
		Step(bodies, dt)
	}
	return nil
}
