// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"context"
	"testing"

	"cogentcore.org/orbit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestAcceleration(t *testing.T) {
	sun := math32.Vec2(0, 0)

	// G * 1e10 / 100 * 100 = 0.6674
	acc := Acceleration(sun, SunMass, math32.Vec2(-10, 0), 0)
	assert.InDelta(t, 0.6674, acc.X, tol)
	assert.InDelta(t, 0, acc.Y, tol)

	acc = Acceleration(sun, SunMass, math32.Vec2(0, 10), 2)
	assert.InDelta(t, 0, acc.X, tol)
	assert.InDelta(t, -0.3337, acc.Y, tol)

	assert.Equal(t, math32.Vector2{}, Acceleration(sun, SunMass, sun, 1))
	assert.Equal(t, math32.Vector3{}, Acceleration(math32.Vec3(1, 2, 3), SunMass, math32.Vec3(1, 2, 3), 0))
}

func TestAcceleratePhoton(t *testing.T) {
	bodies := []Body2{
		NewBody2("Sun", math32.Vec2(0, 0), math32.Vec2(0, 0), SunMass),
		NewBody2("Photon", math32.Vec2(-10, 0), math32.Vec2(0, 20), 0),
	}
	Accelerate(bodies)

	// the photon is pulled toward the sun
	ph := bodies[1].Transform.Velocity
	assert.InDelta(t, 0.6674, ph.X, tol)
	assert.InDelta(t, 20, ph.Y, tol)

	// a massless photon does not pull the sun
	assert.Equal(t, math32.Vector2{}, bodies[0].Transform.Velocity)
}

func TestAccelerateKinematic(t *testing.T) {
	bodies := []Body3{
		NewBody3("Sun", math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), SunMass),
		NewBody3("Moon", math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0), 1),
	}
	bodies[0].Kind = Kinematic
	for range 10 {
		Accelerate(bodies)
	}
	assert.Equal(t, math32.Vec3(1, 0, 0), bodies[0].Transform.Velocity)
	assert.Less(t, bodies[1].Transform.Velocity.Z, float32(0))
}

func TestAccelerateDropsWeakPulls(t *testing.T) {
	bodies := SolarSystem2()
	Accelerate(bodies)
	for i, bd := range SolarSystem2() {
		assert.Equal(t, bd.Transform.Velocity, bodies[i].Transform.Velocity, bd.Name)
	}
}

func TestIntegrate(t *testing.T) {
	bodies := []Body2{NewBody2("a", math32.Vec2(0, 0), math32.Vec2(10, 0), 1)}
	bodies[0].Damping.Linear = 0.5
	Integrate(bodies, 0.1)
	assert.InDelta(t, 9.5, bodies[0].Transform.Velocity.X, tol)
	assert.InDelta(t, 0.95, bodies[0].Transform.Position.X, tol)

	// undamped motion is uniform
	bodies = SolarSystem2()
	Integrate(bodies, 0.5)
	assert.Equal(t, math32.Vec2(100, 5), bodies[1].Transform.Position)
	assert.Equal(t, math32.Vec2(-90, 50), bodies[2].Transform.Position)
}

func TestStepOrbit(t *testing.T) {
	bodies := []Body2{
		NewBody2("Sun", math32.Vec2(0, 0), math32.Vec2(0, 0), SunMass),
		NewBody2("Photon", math32.Vec2(-10, 0), math32.Vec2(0, 1), 0),
	}
	bodies[0].Kind = Kinematic
	d0 := bodies[1].Transform.Position.Length()
	Step(bodies, 0.016)
	assert.Less(t, bodies[1].Transform.Position.Length(), d0)
	assert.Equal(t, math32.Vector2{}, bodies[0].Transform.Position)
}

func TestRun(t *testing.T) {
	bodies := SolarSystem3()
	require.NoError(t, Run(context.Background(), bodies, 0.016, 100))
	assert.InDelta(t, 16, bodies[1].Transform.Position.Y, 1e-3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bodies = SolarSystem3()
	assert.ErrorIs(t, Run(ctx, bodies, 0.016, 100), context.Canceled)
	assert.Equal(t, SolarSystem3(), bodies)
}
