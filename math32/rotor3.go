// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Rotor3 is a 3D rotor: a scalar plus one bivector component for each
// coordinate plane. It is equivalent to a unit quaternion, with the
// bivector of each plane carrying the axis normal to that plane:
// B12 (xy-plane) carries the Z axis, B23 (yz-plane) the X axis
// and B31 (zx-plane) the Y axis. This mapping must be preserved
// when exchanging rotors with other code.
// Rotors made by this package have unit norm, which Rotate and Mul assume.
type Rotor3 struct {
	Scalar float32

	// B12 is the xy-plane bivector, rotating about Z.
	B12 float32

	// B23 is the yz-plane bivector, rotating about X.
	B23 float32

	// B31 is the zx-plane bivector, rotating about Y.
	B31 float32
}

// Rotor3Identity returns the rotor that does not rotate.
func Rotor3Identity() Rotor3 {
	return Rotor3{Scalar: 1}
}

// NewRotor3AxisAngle returns the rotor for a right-handed rotation by
// the given angle in radians about the given axis, which need not be
// normalized. If the axis length is below [Epsilon], it returns
// [Rotor3Identity].
func NewRotor3AxisAngle(axis Vector3, angle float32) Rotor3 {
	l := axis.Length()
	if l < Epsilon {
		return Rotor3Identity()
	}
	n := axis.MulScalar(1 / l)
	h := angle * 0.5
	s := Sin(h)
	return Rotor3{
		Scalar: Cos(h),
		B12:    n.Z * s,
		B23:    n.X * s,
		B31:    n.Y * s,
	}
}

func (r Rotor3) String() string {
	return fmt.Sprintf("Rotor3(%v, %v, %v, %v)", r.Scalar, r.B12, r.B23, r.B31)
}

// Rotate returns v rotated by this rotor, using the expanded
// sandwich product R v R⁻¹, without constructing the reverse.
func (r Rotor3) Rotate(v Vector3) Vector3 {
	s, x, y, z := r.Scalar, r.B23, r.B31, r.B12

	ss := s * s
	xx := x * x
	yy := y * y
	zz := z * z
	xy := x * y
	xz := x * z
	yz := y * z
	sx := s * x
	sy := s * y
	sz := s * z

	return Vector3{
		X: v.X*(ss+xx-yy-zz) + v.Y*2*(xy-sz) + v.Z*2*(xz+sy),
		Y: v.X*2*(xy+sz) + v.Y*(ss-xx+yy-zz) + v.Z*2*(yz-sx),
		Z: v.X*2*(xz-sy) + v.Y*2*(yz+sx) + v.Z*(ss-xx-yy+zz),
	}
}

// Mul returns the geometric product r * other: the rotation
// that applies other first and then r, so that
// b.Mul(a).Rotate(v) == b.Rotate(a.Rotate(v)).
func (r Rotor3) Mul(other Rotor3) Rotor3 {
	return Rotor3{
		Scalar: r.Scalar*other.Scalar - r.B12*other.B12 - r.B23*other.B23 - r.B31*other.B31,
		B12:    r.Scalar*other.B12 + r.B12*other.Scalar + r.B23*other.B31 - r.B31*other.B23,
		B23:    r.Scalar*other.B23 + r.B23*other.Scalar + r.B31*other.B12 - r.B12*other.B31,
		B31:    r.Scalar*other.B31 + r.B31*other.Scalar + r.B12*other.B23 - r.B23*other.B12,
	}
}

// Reverse returns the reverse of this rotor, with the bivector
// components negated, which is the inverse rotation for a unit rotor.
func (r Rotor3) Reverse() Rotor3 {
	return Rotor3{Scalar: r.Scalar, B12: -r.B12, B23: -r.B23, B31: -r.B31}
}

// Dot returns the 4-component dot product of the two rotors.
func (r Rotor3) Dot(other Rotor3) float32 {
	return r.Scalar*other.Scalar + r.B12*other.B12 + r.B23*other.B23 + r.B31*other.B31
}

// NormSquared returns the squared norm of this rotor.
func (r Rotor3) NormSquared() float32 {
	return r.Dot(r)
}

// Normal returns this rotor rescaled to unit norm. If its squared
// norm is below [RotorEpsilon], it returns [Rotor3Identity].
func (r Rotor3) Normal() Rotor3 {
	n2 := r.NormSquared()
	if n2 < RotorEpsilon {
		return Rotor3Identity()
	}
	inv := 1 / Sqrt(n2)
	return Rotor3{Scalar: r.Scalar * inv, B12: r.B12 * inv, B23: r.B23 * inv, B31: r.B31 * inv}
}

// IsIdentity returns whether this rotor is exactly the identity.
func (r Rotor3) IsIdentity() bool {
	return r == Rotor3Identity()
}

// Rotor3Slerp returns the spherical linear interpolation from r1 (t = 0)
// to r2 (t = 1), along the shortest arc: when the rotors are in opposite
// hemispheres, the contribution of r2 is negated. Nearly parallel rotors
// (|dot| > [SlerpThreshold]) are interpolated linearly and renormalized,
// which avoids dividing by a vanishing sin(θ).
func Rotor3Slerp(r1, r2 Rotor3, t float32) Rotor3 {
	dot := r1.Dot(r2)
	sign := Sign(dot)
	dot = Abs(dot)
	if dot > SlerpThreshold {
		return Rotor3{
			Scalar: r1.Scalar + t*(sign*r2.Scalar-r1.Scalar),
			B12:    r1.B12 + t*(sign*r2.B12-r1.B12),
			B23:    r1.B23 + t*(sign*r2.B23-r1.B23),
			B31:    r1.B31 + t*(sign*r2.B31-r1.B31),
		}.Normal()
	}
	s1, s2 := slerpScales(dot, t)
	s2 *= sign
	return Rotor3{
		Scalar: s1*r1.Scalar + s2*r2.Scalar,
		B12:    s1*r1.B12 + s2*r2.B12,
		B23:    s1*r1.B23 + s2*r2.B23,
		B31:    s1*r1.B31 + s2*r2.B31,
	}
}
