// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates [gpu.Vertex] data for simple shapes,
// which can be combined in a [Group] and set on a [gpu.Mesh].
package shape

import (
	"cogentcore.org/orbit/gpu"
	"cogentcore.org/orbit/math32"
)

// Shape is a source of indexed triangle vertex data.
type Shape interface {
	// Size returns the number of vertices and indices of the shape.
	Size() (numVertex, numIndex int)

	// Set sets the vertices and indices of the shape, which have the
	// lengths returned by Size. Indices are offset by vertexOffset,
	// the index of the first vertex in the full vertex data.
	Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int)
}

// Group is a group of shapes, which are set one after the other.
type Group struct {
	Shapes []Shape
}

// Size returns the total number of vertices and indices of the shapes.
func (gp *Group) Size() (numVertex, numIndex int) {
	for _, sh := range gp.Shapes {
		nv, ni := sh.Size()
		numVertex += nv
		numIndex += ni
	}
	return
}

// Set sets the shapes in order.
func (gp *Group) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	vo, io := 0, 0
	for _, sh := range gp.Shapes {
		nv, ni := sh.Size()
		sh.Set(vertices[vo:vo+nv], indices[io:io+ni], vertexOffset+vo)
		vo += nv
		io += ni
	}
}

// SetMesh sets the vertices and indices of the mesh to those of the shape.
func SetMesh(m *gpu.Mesh, sh Shape) {
	nv, ni := sh.Size()
	vertices := make([]gpu.Vertex, nv)
	indices := make([]uint32, ni)
	sh.Set(vertices, indices, 0)
	gpu.SetVerticesFrom(m, vertices)
	m.SetIndices(indices)
}

// Triangle is a single triangle with counter-clockwise corners
// A, B and C, and one color.
type Triangle struct {
	A, B, C math32.Vector3
	Color   math32.Vector4
}

// Size returns the 3 vertices and 3 indices of the triangle.
func (tr *Triangle) Size() (numVertex, numIndex int) {
	return 3, 3
}

// Normal returns the unit normal of the front face.
func (tr *Triangle) Normal() math32.Vector3 {
	return tr.B.Sub(tr.A).Cross(tr.C.Sub(tr.A)).Normal()
}

// Set sets the three corners, all with the face normal and
// a tangent along AB.
func (tr *Triangle) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	normal := tr.Normal()
	tangent := tr.B.Sub(tr.A).Normal().Extend(1)
	uvs := [3]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(0.5, 1)}
	for i, p := range [3]math32.Vector3{tr.A, tr.B, tr.C} {
		vertices[i] = gpu.Vertex{Position: p, Normal: normal, UV: uvs[i], Tangent: tangent, Color: tr.Color}
		indices[i] = uint32(vertexOffset + i)
	}
}

// Plane is a rectangle of the given size in the XY plane,
// centered on Center and facing +Z.
type Plane struct {
	Center math32.Vector3
	Extent math32.Vector2
	Color  math32.Vector4
}

// Size returns the 4 corners and 6 indices of the two triangles.
func (pl *Plane) Size() (numVertex, numIndex int) {
	return quadVertices, quadIndices
}

// Set sets the corners counter-clockwise from the bottom left.
func (pl *Plane) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	h := pl.Extent.MulScalar(0.5)
	setQuad(vertices, indices, vertexOffset, pl.Center, math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), h.X, h.Y, pl.Color)
}

const (
	quadVertices = 4
	quadIndices  = 6
)

// setQuad sets a rectangle centered on center with the given
// normal, spanning half sizes hu and hv along the unit axes u and v,
// where u cross v is the normal.
func setQuad(vertices []gpu.Vertex, indices []uint32, vertexOffset int, center, normal, u, v math32.Vector3, hu, hv float32, color math32.Vector4) {
	tangent := u.Extend(1)
	corners := [quadVertices]math32.Vector2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	for i, c := range corners {
		vertices[i] = gpu.Vertex{
			Position: center.Add(u.MulScalar(c.X * hu)).Add(v.MulScalar(c.Y * hv)),
			Normal:   normal,
			UV:       c.AddScalar(1).MulScalar(0.5),
			Tangent:  tangent,
			Color:    color,
		}
	}
	for i, ix := range [quadIndices]int{0, 1, 2, 0, 2, 3} {
		indices[i] = uint32(vertexOffset + ix)
	}
}

// segments returns n, or def if n is not positive, and at least least.
func segments(n, def, least int) int {
	if n <= 0 {
		n = def
	}
	return max(n, least)
}
