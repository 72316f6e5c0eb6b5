// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Rotor2 is a 2D rotor: a scalar plus the single xy-plane bivector,
// equal to cos(θ/2) and sin(θ/2) for a counter-clockwise rotation by θ.
// Rotors made by this package have unit norm, which Rotate and Mul assume.
type Rotor2 struct {
	Scalar   float32
	Bivector float32
}

// Rotor2Identity returns the rotor that does not rotate.
func Rotor2Identity() Rotor2 {
	return Rotor2{Scalar: 1}
}

// NewRotor2 returns the rotor for a counter-clockwise rotation
// by the given angle in radians.
func NewRotor2(angle float32) Rotor2 {
	h := angle * 0.5
	return Rotor2{Scalar: Cos(h), Bivector: Sin(h)}
}

func (r Rotor2) String() string {
	return fmt.Sprintf("Rotor2(%v, %v)", r.Scalar, r.Bivector)
}

// Angle returns the rotation angle of this rotor in radians, in (-2π, 2π].
func (r Rotor2) Angle() float32 {
	return 2 * Atan2(r.Bivector, r.Scalar)
}

// Rotate returns v rotated by this rotor, using the expanded
// sandwich product R v R⁻¹.
func (r Rotor2) Rotate(v Vector2) Vector2 {
	c := r.Scalar*r.Scalar - r.Bivector*r.Bivector
	s := 2 * r.Scalar * r.Bivector
	return Vector2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Mul returns the geometric product r * other: the rotation
// that applies other first and then r.
func (r Rotor2) Mul(other Rotor2) Rotor2 {
	return Rotor2{
		Scalar:   r.Scalar*other.Scalar - r.Bivector*other.Bivector,
		Bivector: r.Scalar*other.Bivector + r.Bivector*other.Scalar,
	}
}

// Reverse returns the reverse of this rotor, which is the inverse
// rotation for a unit rotor.
func (r Rotor2) Reverse() Rotor2 {
	return Rotor2{Scalar: r.Scalar, Bivector: -r.Bivector}
}

// Dot returns the dot product of the components of the two rotors.
func (r Rotor2) Dot(other Rotor2) float32 {
	return r.Scalar*other.Scalar + r.Bivector*other.Bivector
}

// NormSquared returns the squared norm of this rotor.
func (r Rotor2) NormSquared() float32 {
	return r.Dot(r)
}

// Normal returns this rotor rescaled to unit norm. If its squared
// norm is below [RotorEpsilon], it returns [Rotor2Identity].
func (r Rotor2) Normal() Rotor2 {
	n2 := r.NormSquared()
	if n2 < RotorEpsilon {
		return Rotor2Identity()
	}
	inv := 1 / Sqrt(n2)
	return Rotor2{Scalar: r.Scalar * inv, Bivector: r.Bivector * inv}
}

// IsIdentity returns whether this rotor is exactly the identity.
func (r Rotor2) IsIdentity() bool {
	return r == Rotor2Identity()
}

// Rotor2Slerp returns the spherical interpolation from r1 to r2 by t,
// along the shortest arc. See [Rotor3Slerp] for details.
func Rotor2Slerp(r1, r2 Rotor2, t float32) Rotor2 {
	dot := r1.Dot(r2)
	sign := Sign(dot)
	dot = Abs(dot)
	if dot > SlerpThreshold {
		return Rotor2{
			Scalar:   r1.Scalar + t*(sign*r2.Scalar-r1.Scalar),
			Bivector: r1.Bivector + t*(sign*r2.Bivector-r1.Bivector),
		}.Normal()
	}
	s1, s2 := slerpScales(dot, t)
	s2 *= sign
	return Rotor2{
		Scalar:   s1*r1.Scalar + s2*r2.Scalar,
		Bivector: s1*r1.Bivector + s2*r2.Bivector,
	}
}

// slerpScales returns the weights of the two end points for exact
// spherical interpolation by t, given their non-negative dot product.
func slerpScales(dot, t float32) (float32, float32) {
	theta := Acos(dot)
	st := Sin(theta)
	return Sin((1-t)*theta) / st, Sin(t*theta) / st
}
