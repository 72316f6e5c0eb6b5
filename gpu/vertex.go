// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"cogentcore.org/orbit/math32"
)

// Vertex is the standard vertex record for lit, textured geometry.
// Its fields are read by the shader at locations 0 through 4.
type Vertex struct {
	Position math32.Vector3
	Normal   math32.Vector3
	UV       math32.Vector2
	Tangent  math32.Vector4
	Color    math32.Vector4
}

// VertexLayout returns the [Layout] of [Vertex] data, with offsets
// taken from the Go struct layout.
func VertexLayout() Layout {
	var v Vertex
	ly := Layout{}
	ly.Add("Position", Vector3, WithLocation(0), WithOffset(int(unsafe.Offsetof(v.Position))))
	ly.Add("Normal", Vector3, WithLocation(1), WithOffset(int(unsafe.Offsetof(v.Normal))))
	ly.Add("UV", Vector2, WithLocation(2), WithOffset(int(unsafe.Offsetof(v.UV))))
	ly.Add("Tangent", Vector4, WithLocation(3), WithOffset(int(unsafe.Offsetof(v.Tangent))))
	ly.Add("Color", Vector4, WithLocation(4), WithOffset(int(unsafe.Offsetof(v.Color))))
	ly.Stride = int(unsafe.Sizeof(v))
	return ly
}

// SliceBytes returns the memory of the given slice as bytes,
// without copying. The element type must not contain pointers.
func SliceBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var e E
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(e)))
}
