// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Rotor is implemented by rotation types that act on vectors of type V,
// such as [Rotor2] on [Vector2] and [Rotor3] on [Vector3].
type Rotor[V any] interface {
	Rotate(v V) V
}

// Composer is implemented by rotation types that compose under
// multiplication, where a.Mul(b) applies b first and then a.
type Composer[R any] interface {
	Mul(other R) R
}

// RotateAll rotates each of the given vectors in place by r.
func RotateAll[V any, R Rotor[V]](r R, vs []V) {
	for i := range vs {
		vs[i] = r.Rotate(vs[i])
	}
}

// Chain returns the single rotor equivalent to applying the given
// rotors in order, starting from the given identity: the first rotor
// is applied first. Chain(id) returns id.
func Chain[R Composer[R]](identity R, rs ...R) R {
	res := identity
	for _, r := range rs {
		res = r.Mul(res)
	}
	return res
}
