// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages vertex data on the GPU: it describes the layout
// of vertex attributes, and drives a graphics [Backend] through the
// build, update, draw and release lifecycle of a [Mesh].
//
// Concrete backends live in the webgpu and opengl subpackages,
// and gputest provides a recording backend for tests.
// A Mesh is not safe for concurrent use, and must be used
// on the goroutine that owns the backend context.
package gpu

import "cogentcore.org/orbit/base/errors"

// Debug is whether to log mesh lifecycle events at the Info level.
var Debug = false

var (
	// ErrNoVertices is returned by [Mesh.Build] and [Mesh.UpdateVertices]
	// when there is no vertex data.
	ErrNoVertices = errors.New("gpu: mesh has no vertices")

	// ErrNotBuilt is returned by [Mesh.Draw] when the mesh has not been
	// built since it last changed, or has no vertices.
	ErrNotBuilt = errors.New("gpu: mesh is not built")

	// ErrShortData is returned when vertex data is shorter than
	// the vertex count times the layout stride.
	ErrShortData = errors.New("gpu: vertex data shorter than count times stride")

	// ErrNoAttributes is returned by [Mesh.Build] when the layout
	// has no attributes to bind.
	ErrNoAttributes = errors.New("gpu: mesh layout has no attributes")
)
