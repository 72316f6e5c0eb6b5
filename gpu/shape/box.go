// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/orbit/gpu"
	"cogentcore.org/orbit/math32"
)

// Box is an axis-aligned cuboid centered on Center, with each
// face a separate quad so that corners get the normal of their face.
type Box struct {
	Center math32.Vector3

	// HalfSize is half the size along each axis.
	HalfSize math32.Vector3

	Color math32.Vector4
}

// boxFaces are the normal, u and v axes of each face, with u cross v
// equal to the normal.
var boxFaces = [6][3]math32.Vector3{
	{{Z: -1}, {X: -1}, {Y: 1}}, // nz
	{{Y: -1}, {X: 1}, {Z: 1}},  // ny
	{{X: 1}, {Z: -1}, {Y: 1}},  // px
	{{X: -1}, {Z: 1}, {Y: 1}},  // nx
	{{Y: 1}, {X: 1}, {Z: -1}},  // py
	{{Z: 1}, {X: 1}, {Y: 1}},   // pz
}

// Size returns the 24 vertices and 36 indices of the six faces.
func (bx *Box) Size() (numVertex, numIndex int) {
	return 6 * quadVertices, 6 * quadIndices
}

// Set sets the faces, starting with -Z as the back.
func (bx *Box) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	for i, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		vs := vertices[i*quadVertices : (i+1)*quadVertices]
		is := indices[i*quadIndices : (i+1)*quadIndices]
		center := bx.Center.Add(n.Mul(bx.HalfSize))
		setQuad(vs, is, vertexOffset+i*quadVertices, center, n, u, v, axisHalf(u, bx.HalfSize), axisHalf(v, bx.HalfSize), bx.Color)
	}
}

// axisHalf returns the half size along the unit axis a.
func axisHalf(a, half math32.Vector3) float32 {
	return math32.Abs(a.X)*half.X + math32.Abs(a.Y)*half.Y + math32.Abs(a.Z)*half.Z
}
