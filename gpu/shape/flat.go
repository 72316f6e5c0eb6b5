// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/orbit/gpu"
	"cogentcore.org/orbit/math32"
)

// Ellipse is a filled ellipse in the XY plane, centered on Center
// and facing +Z, drawn as a fan of triangles around its center.
type Ellipse struct {
	Center math32.Vector3

	// Radii are the radii along X and Y.
	Radii math32.Vector2

	// Segments is the number of segments around the edge,
	// 32 if not set, and at least 3.
	Segments int

	Color math32.Vector4
}

// NewCircle returns a circle as an [Ellipse] with equal radii.
func NewCircle(center math32.Vector3, radius float32, segments int) *Ellipse {
	return &Ellipse{Center: center, Radii: math32.Vec2(radius, radius), Segments: segments}
}

// Size returns the center and a closed ring of vertices,
// and one triangle per segment.
func (el *Ellipse) Size() (numVertex, numIndex int) {
	segs := segments(el.Segments, 32, 3)
	return segs + 2, 3 * segs
}

// Set sets the center, then the ring counter-clockwise from +X.
func (el *Ellipse) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	segs := segments(el.Segments, 32, 3)
	normal := math32.Vec3(0, 0, 1)
	tangent := math32.Vec4(1, 0, 0, 1)
	vertices[0] = gpu.Vertex{Position: el.Center, Normal: normal, UV: math32.Vec2(0.5, 0.5), Tangent: tangent, Color: el.Color}
	for i := 0; i <= segs; i++ {
		a := float32(i) / float32(segs) * 2 * math32.Pi
		sa, ca := math32.Sin(a), math32.Cos(a)
		vertices[1+i] = gpu.Vertex{
			Position: el.Center.Add(math32.Vec3(el.Radii.X*ca, el.Radii.Y*sa, 0)),
			Normal:   normal,
			UV:       math32.Vec2((ca+1)/2, (sa+1)/2),
			Tangent:  tangent,
			Color:    el.Color,
		}
	}
	for i := range segs {
		indices[3*i] = uint32(vertexOffset + 1 + i)
		indices[3*i+1] = uint32(vertexOffset + 2 + i)
		indices[3*i+2] = uint32(vertexOffset)
	}
}

// Polygon is a filled convex polygon in the XY plane, offset by
// Center and facing +Z. Points must be in counter-clockwise order.
type Polygon struct {
	Center math32.Vector3
	Points []math32.Vector2
	Color  math32.Vector4
}

// NewCapsule2D returns a stadium in the XY plane: a rectangle of
// length 2*halfLength along X with semicircle ends of the given radius,
// each made of the given number of segments.
func NewCapsule2D(center math32.Vector3, radius, halfLength float32, segments int) *Polygon {
	segs := max(segments, 1)
	pts := make([]math32.Vector2, 0, 2*(segs+1))
	for _, end := range [2]float32{1, -1} {
		c := math32.Vec2(end*halfLength, 0)
		start := float32(-math32.Pi / 2)
		if end < 0 {
			start = math32.Pi / 2
		}
		for i := 0; i <= segs; i++ {
			a := start + float32(i)/float32(segs)*math32.Pi
			pts = append(pts, c.Add(math32.Vec2(math32.Cos(a), math32.Sin(a)).MulScalar(radius)))
		}
	}
	return &Polygon{Center: center, Points: pts}
}

// Size returns the points and a fan of triangles from the first point,
// or nothing if there are fewer than 3 points.
func (pg *Polygon) Size() (numVertex, numIndex int) {
	if len(pg.Points) < 3 {
		return 0, 0
	}
	return len(pg.Points), 3 * (len(pg.Points) - 2)
}

// Set sets the points, with UVs spanning their bounding box.
func (pg *Polygon) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	if len(pg.Points) < 3 {
		return
	}
	mn, mx := pg.Points[0], pg.Points[0]
	for _, p := range pg.Points[1:] {
		mn = math32.Vec2(min(mn.X, p.X), min(mn.Y, p.Y))
		mx = math32.Vec2(max(mx.X, p.X), max(mx.Y, p.Y))
	}
	ext := mx.Sub(mn)
	for i, p := range pg.Points {
		vertices[i] = gpu.Vertex{
			Position: pg.Center.Add(p.Extend(0)),
			Normal:   math32.Vec3(0, 0, 1),
			UV:       p.Sub(mn).Div(ext),
			Tangent:  math32.Vec4(1, 0, 0, 1),
			Color:    pg.Color,
		}
	}
	for i := 1; i < len(pg.Points)-1; i++ {
		j := 3 * (i - 1)
		indices[j] = uint32(vertexOffset)
		indices[j+1] = uint32(vertexOffset + i)
		indices[j+2] = uint32(vertexOffset + i + 1)
	}
}
