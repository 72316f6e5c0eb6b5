// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// BufferRoles are the roles a GPU buffer can be used in.
type BufferRoles int32

const (
	// VertexBuffer holds interleaved vertex data.
	VertexBuffer BufferRoles = iota

	// IndexBuffer holds uint32 triangle indices.
	IndexBuffer
)

func (br BufferRoles) String() string {
	switch br {
	case VertexBuffer:
		return "VertexBuffer"
	case IndexBuffer:
		return "IndexBuffer"
	}
	return "BufferRoles(?)"
}

// AttributeBinding is the information a backend needs to bind
// one vertex attribute to the data in a vertex buffer.
type AttributeBinding struct {
	Location   int
	Components int
	Scalar     ScalarTypes

	// Normalized is only ever set for float attributes.
	Normalized bool

	// Integer is whether the attribute is read as integers
	// rather than converted to floats.
	Integer bool

	Stride int
	Offset int
}

// Backend is the graphics API that a [Mesh] drives.
// Handles are non-zero ids allocated by the backend.
// All methods must be called on the goroutine owning the
// backend context, and a Backend is not safe for concurrent use.
type Backend interface {
	// NewVertexArray allocates a vertex array object, which records
	// the attribute bindings of a mesh.
	NewVertexArray() (uint32, error)

	// NewBuffer allocates a buffer for the given role.
	NewBuffer(role BufferRoles) (uint32, error)

	ReleaseVertexArray(id uint32)
	ReleaseBuffer(id uint32)

	// BufferData uploads data into the buffer, replacing its contents
	// and reallocating its storage if the size changed.
	BufferData(id uint32, role BufferRoles, data []byte) error

	// VertexAttribute binds an attribute of the vertex array to
	// data in the given vertex buffer.
	VertexAttribute(vao, vbo uint32, b AttributeBinding) error

	// Draw draws count vertices of triangles, starting at first.
	Draw(vao uint32, first, count int) error

	// DrawIndexed draws count indices of triangles from the index buffer.
	DrawIndexed(vao, ebo uint32, count int) error
}
