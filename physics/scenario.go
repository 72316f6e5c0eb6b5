// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "cogentcore.org/orbit/math32"

// SunMass and PlanetMass are the masses of the standard scenario.
const (
	SunMass    = 1.0e10
	PlanetMass = 1.0e4
)

// SolarSystem2 returns a heavy sun at the origin, a planet moving
// perpendicular to it and a massless photon crossing from the left.
// All bodies are dynamic and undamped.
func SolarSystem2() []Body2 {
	return []Body2{
		NewBody2("Sun", math32.Vec2(0, 0), math32.Vec2(0, 0), SunMass),
		NewBody2("Planet", math32.Vec2(100, 0), math32.Vec2(0, 10), PlanetMass),
		NewBody2("Photon", math32.Vec2(-100, 50), math32.Vec2(20, 0), 0),
	}
}

// SolarSystem3 is the 3D version of [SolarSystem2], with the planet
// and photon also moving along Z.
func SolarSystem3() []Body3 {
	return []Body3{
		NewBody3("Sun", math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 0), SunMass),
		NewBody3("Planet", math32.Vec3(100, 0, 0), math32.Vec3(0, 10, 2), PlanetMass),
		NewBody3("Photon", math32.Vec3(-100, 50, 25), math32.Vec3(20, 0, -5), 0),
	}
}
