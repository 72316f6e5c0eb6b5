// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/orbit/gpu"
	"cogentcore.org/orbit/math32"
)

// Cylinder is a closed cylinder along the Y axis, centered on Center.
type Cylinder struct {
	Center     math32.Vector3
	Radius     float32
	HalfHeight float32

	// Segments is the number of segments around the Y axis,
	// 32 if not set, and at least 3.
	Segments int

	Color math32.Vector4
}

func (cy *Cylinder) frustum() frustum {
	return frustum{center: cy.Center, topRadius: cy.Radius, bottomRadius: cy.Radius, height: 2 * cy.HalfHeight, segments: segments(cy.Segments, 32, 3), color: cy.Color}
}

// Size returns the number of vertices and indices of the side and caps.
func (cy *Cylinder) Size() (numVertex, numIndex int) {
	return cy.frustum().size()
}

// Set sets the side, then the top and bottom caps.
func (cy *Cylinder) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	cy.frustum().set(vertices, indices, vertexOffset)
}

// ConicalFrustum is a truncated cone along the Y axis, centered on
// Center, with a different radius at each end. A zero TopRadius makes
// a cone, and an end with zero radius has no cap.
type ConicalFrustum struct {
	Center       math32.Vector3
	TopRadius    float32
	BottomRadius float32
	Height       float32

	// Segments is the number of segments around the Y axis,
	// 32 if not set, and at least 3.
	Segments int

	Color math32.Vector4
}

func (cf *ConicalFrustum) frustum() frustum {
	return frustum{center: cf.Center, topRadius: cf.TopRadius, bottomRadius: cf.BottomRadius, height: cf.Height, segments: segments(cf.Segments, 32, 3), color: cf.Color}
}

// Size returns the number of vertices and indices of the side and caps.
func (cf *ConicalFrustum) Size() (numVertex, numIndex int) {
	return cf.frustum().size()
}

// Set sets the side, then the caps that have a non-zero radius.
func (cf *ConicalFrustum) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	cf.frustum().set(vertices, indices, vertexOffset)
}

// frustum is the generator behind the cylinder shapes.
type frustum struct {
	center                  math32.Vector3
	topRadius, bottomRadius float32
	height                  float32
	segments                int
	noCaps                  bool
	color                   math32.Vector4
}

func (fr frustum) hasTop() bool    { return !fr.noCaps && fr.topRadius > 0 }
func (fr frustum) hasBottom() bool { return !fr.noCaps && fr.bottomRadius > 0 }

// capSize is the size of a cap: its center and a closed ring.
func (fr frustum) capSize() (numVertex, numIndex int) {
	return fr.segments + 2, 3 * fr.segments
}

// sideTriangles returns the number of side triangles per segment,
// leaving out the degenerate ones at an end of zero radius.
func (fr frustum) sideTriangles() int {
	n := 2
	if fr.topRadius == 0 {
		n--
	}
	if fr.bottomRadius == 0 {
		n--
	}
	return n
}

func (fr frustum) size() (numVertex, numIndex int) {
	numVertex, numIndex = 2*(fr.segments+1), 3*fr.sideTriangles()*fr.segments
	cv, ci := fr.capSize()
	if fr.hasTop() {
		numVertex += cv
		numIndex += ci
	}
	if fr.hasBottom() {
		numVertex += cv
		numIndex += ci
	}
	return
}

func (fr frustum) set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	hh := fr.height / 2
	slope := float32(0)
	if fr.height > 0 {
		slope = (fr.bottomRadius - fr.topRadius) / fr.height
	}
	row := fr.segments + 1
	for y, radius := range [2]float32{fr.topRadius, fr.bottomRadius} {
		py := hh - float32(y)*fr.height
		for x := 0; x <= fr.segments; x++ {
			u := float32(x) / float32(fr.segments)
			sa, ca := math32.Sin(u*2*math32.Pi), math32.Cos(u*2*math32.Pi)
			vertices[y*row+x] = gpu.Vertex{
				Position: fr.center.Add(math32.Vec3(-radius*ca, py, radius*sa)),
				Normal:   math32.Vec3(-ca, slope, sa).Normal(),
				UV:       math32.Vec2(u, 1-float32(y)),
				Tangent:  math32.Vec4(sa, 0, ca, 1),
				Color:    fr.color,
			}
		}
	}
	n := 0
	for x := range fr.segments {
		v1, v2, v3, v4 := x+1, x, row+x, row+x+1
		if fr.topRadius != 0 {
			for _, ix := range [3]int{v1, v2, v4} {
				indices[n] = uint32(vertexOffset + ix)
				n++
			}
		}
		if fr.bottomRadius != 0 {
			for _, ix := range [3]int{v2, v3, v4} {
				indices[n] = uint32(vertexOffset + ix)
				n++
			}
		}
	}
	vo := 2 * row
	cv, ci := fr.capSize()
	if fr.hasTop() {
		fr.setCap(vertices[vo:vo+cv], indices[n:n+ci], vertexOffset+vo, fr.topRadius, hh, 1)
		vo += cv
		n += ci
	}
	if fr.hasBottom() {
		fr.setCap(vertices[vo:vo+cv], indices[n:n+ci], vertexOffset+vo, fr.bottomRadius, -hh, -1)
	}
}

// setCap sets a disk at height y facing dir along the Y axis.
func (fr frustum) setCap(vertices []gpu.Vertex, indices []uint32, vertexOffset int, radius, y, dir float32) {
	normal := math32.Vec3(0, dir, 0)
	tangent := math32.Vec4(1, 0, 0, 1)
	center := fr.center.Add(math32.Vec3(0, y, 0))
	vertices[0] = gpu.Vertex{Position: center, Normal: normal, UV: math32.Vec2(0.5, 0.5), Tangent: tangent, Color: fr.color}
	for x := 0; x <= fr.segments; x++ {
		a := float32(x) / float32(fr.segments) * 2 * math32.Pi
		sa, ca := math32.Sin(a), math32.Cos(a)
		vertices[1+x] = gpu.Vertex{
			Position: center.Add(math32.Vec3(-radius*ca, 0, radius*sa)),
			Normal:   normal,
			UV:       math32.Vec2((1-ca)/2, (1+sa)/2),
			Tangent:  tangent,
			Color:    fr.color,
		}
	}
	for x := range fr.segments {
		a, b := 1+x, 2+x
		if dir < 0 {
			a, b = b, a
		}
		indices[3*x] = uint32(vertexOffset)
		indices[3*x+1] = uint32(vertexOffset + a)
		indices[3*x+2] = uint32(vertexOffset + b)
	}
}
