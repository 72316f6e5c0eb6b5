// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/orbit/gpu"
	"cogentcore.org/orbit/math32"
)

// Sphere is a UV sphere centered on Center, with its poles on the Y axis.
type Sphere struct {
	Center math32.Vector3
	Radius float32

	// Segments is the number of segments around the Y axis,
	// 32 if not set, and at least 3.
	Segments int

	// Rings is the number of segments from pole to pole,
	// 16 if not set, and at least 2.
	Rings int

	Color math32.Vector4
}

func (sp *Sphere) sector() sphereSector {
	return sphereSector{
		center:    sp.Center,
		radius:    sp.Radius,
		segments:  segments(sp.Segments, 32, 3),
		rings:     segments(sp.Rings, 16, 2),
		elevStart: 0,
		elevEnd:   math32.Pi,
		color:     sp.Color,
	}
}

// Size returns the number of vertices and indices, which leaves out
// the degenerate triangles at the poles.
func (sp *Sphere) Size() (numVertex, numIndex int) {
	return sp.sector().size()
}

// Set sets the vertices ring by ring from the top pole down.
func (sp *Sphere) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	sp.sector().set(vertices, indices, vertexOffset)
}

// Capsule is a cylinder along the Y axis with hemisphere caps,
// centered on Center. Its total height is 2*(HalfHeight+Radius).
type Capsule struct {
	Center     math32.Vector3
	Radius     float32
	HalfHeight float32

	// Segments is the number of segments around the Y axis,
	// 32 if not set, and at least 3.
	Segments int

	// Rings is the number of segments in each cap,
	// 8 if not set, and at least 1.
	Rings int

	Color math32.Vector4
}

func (cp *Capsule) parts() (top, bottom sphereSector, side frustum) {
	segs := segments(cp.Segments, 32, 3)
	rings := segments(cp.Rings, 8, 1)
	up := math32.Vec3(0, cp.HalfHeight, 0)
	top = sphereSector{center: cp.Center.Add(up), radius: cp.Radius, segments: segs, rings: rings, elevStart: 0, elevEnd: math32.Pi / 2, color: cp.Color}
	bottom = sphereSector{center: cp.Center.Sub(up), radius: cp.Radius, segments: segs, rings: rings, elevStart: math32.Pi / 2, elevEnd: math32.Pi, color: cp.Color}
	side = frustum{center: cp.Center, topRadius: cp.Radius, bottomRadius: cp.Radius, height: 2 * cp.HalfHeight, segments: segs, noCaps: true, color: cp.Color}
	return
}

// Size returns the number of vertices and indices of the caps and side.
func (cp *Capsule) Size() (numVertex, numIndex int) {
	top, bottom, side := cp.parts()
	return sizeOf(top, side, bottom)
}

// Set sets the top cap, then the side, then the bottom cap.
func (cp *Capsule) Set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	top, bottom, side := cp.parts()
	setAll(vertices, indices, vertexOffset, top, side, bottom)
}

// part is one piece of a composite shape.
type part interface {
	size() (numVertex, numIndex int)
	set(vertices []gpu.Vertex, indices []uint32, vertexOffset int)
}

func sizeOf(parts ...part) (numVertex, numIndex int) {
	for _, p := range parts {
		nv, ni := p.size()
		numVertex += nv
		numIndex += ni
	}
	return
}

func setAll(vertices []gpu.Vertex, indices []uint32, vertexOffset int, parts ...part) {
	vo, io := 0, 0
	for _, p := range parts {
		nv, ni := p.size()
		p.set(vertices[vo:vo+nv], indices[io:io+ni], vertexOffset+vo)
		vo += nv
		io += ni
	}
}

// sphereSector is the band of a sphere between two elevations,
// measured from the +Y pole.
type sphereSector struct {
	center             math32.Vector3
	radius             float32
	segments, rings    int
	elevStart, elevEnd float32
	color              math32.Vector4
}

// atTop and atBottom are whether the band reaches a pole, where the
// triangles touching the pole are degenerate and left out.
func (ss sphereSector) atTop() bool    { return ss.elevStart <= 0 }
func (ss sphereSector) atBottom() bool { return ss.elevEnd >= math32.Pi }

func (ss sphereSector) size() (numVertex, numIndex int) {
	numVertex = (ss.segments + 1) * (ss.rings + 1)
	tris := 2 * ss.segments * ss.rings
	if ss.atTop() {
		tris -= ss.segments
	}
	if ss.atBottom() {
		tris -= ss.segments
	}
	return numVertex, 3 * tris
}

func (ss sphereSector) set(vertices []gpu.Vertex, indices []uint32, vertexOffset int) {
	row := ss.segments + 1
	for y := 0; y <= ss.rings; y++ {
		v := float32(y) / float32(ss.rings)
		elev := ss.elevStart + v*(ss.elevEnd-ss.elevStart)
		se, ce := math32.Sin(elev), math32.Cos(elev)
		for x := 0; x <= ss.segments; x++ {
			u := float32(x) / float32(ss.segments)
			ang := u * 2 * math32.Pi
			sa, ca := math32.Sin(ang), math32.Cos(ang)
			normal := math32.Vec3(-ca*se, ce, sa*se)
			vertices[y*row+x] = gpu.Vertex{
				Position: ss.center.Add(normal.MulScalar(ss.radius)),
				Normal:   normal,
				UV:       math32.Vec2(u, v),
				Tangent:  math32.Vec4(sa, 0, ca, 1),
				Color:    ss.color,
			}
		}
	}
	n := 0
	add := func(a, b, c int) {
		indices[n] = uint32(vertexOffset + a)
		indices[n+1] = uint32(vertexOffset + b)
		indices[n+2] = uint32(vertexOffset + c)
		n += 3
	}
	for y := range ss.rings {
		for x := range ss.segments {
			v1 := y*row + x + 1
			v2 := y*row + x
			v3 := (y+1)*row + x
			v4 := (y+1)*row + x + 1
			if y != 0 || !ss.atTop() {
				add(v1, v2, v4)
			}
			if y != ss.rings-1 || !ss.atBottom() {
				add(v2, v3, v4)
			}
		}
	}
}
