// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// MeshStates are the lifecycle states of a [Mesh].
type MeshStates int32

const (
	// Empty is a mesh with no data and no GPU objects.
	Empty MeshStates = iota

	// Staged is a mesh whose CPU data or layout changed
	// since it was last built.
	Staged

	// Built is a mesh whose GPU objects match its CPU data,
	// ready to draw.
	Built
)

func (ms MeshStates) String() string {
	switch ms {
	case Empty:
		return "Empty"
	case Staged:
		return "Staged"
	case Built:
		return "Built"
	}
	return "MeshStates(?)"
}

// Mesh is interleaved vertex data, with optional triangle indices,
// drawn through a [Backend]. Data is set on the CPU side with
// [Mesh.SetVertices] and [Mesh.SetIndices], uploaded by [Mesh.Build],
// and drawn by [Mesh.Draw]. The mesh owns its GPU objects, which are
// allocated on the first Build and freed by [Mesh.Release].
type Mesh struct {
	// Name is used in log messages.
	Name string

	// Layout of the attributes in the vertex data.
	Layout Layout

	backend     Backend
	state       MeshStates

	// static is whether the layout is the [Vertex] layout,
	// restored by Release.
	static bool

	vertices    []byte
	numVertices int
	indices     []uint32

	vao Handle
	vbo Handle
	ebo Handle
}

// NewMesh returns a new mesh of [Vertex] data drawn through the given backend.
func NewMesh(name string, backend Backend) *Mesh {
	return &Mesh{Name: name, Layout: VertexLayout(), backend: backend, static: true}
}

// NewDynamicMesh returns a new mesh with no attributes, which
// must be added with [Mesh.AddAttribute] before it is built.
func NewDynamicMesh(name string, backend Backend) *Mesh {
	return &Mesh{Name: name, backend: backend}
}

// State returns the current lifecycle state.
func (m *Mesh) State() MeshStates { return m.state }

// NumVertices returns the number of vertices in the CPU data.
func (m *Mesh) NumVertices() int { return m.numVertices }

// NumIndices returns the number of indices in the CPU data.
func (m *Mesh) NumIndices() int { return len(m.indices) }

// Vertices returns the CPU vertex data, which must not be modified.
func (m *Mesh) Vertices() []byte { return m.vertices }

// Indices returns the CPU index data, which must not be modified.
func (m *Mesh) Indices() []uint32 { return m.indices }

// Backend returns the backend the mesh is drawn through.
func (m *Mesh) Backend() Backend { return m.backend }

// VertexArray returns the backend id of the vertex array,
// or 0 if the mesh has not been built.
func (m *Mesh) VertexArray() uint32 { return m.vao.ID() }

// AddAttribute adds an attribute to the layout. See [Layout.Add].
// A built mesh must be built again.
func (m *Mesh) AddAttribute(name string, kind AttributeKinds, opts ...AttributeOption) VertexAttribute {
	va := m.Layout.Add(name, kind, opts...)
	if m.state == Built {
		m.state = Staged
	}
	return va
}

// SetVertices sets the CPU vertex data to count vertices of interleaved
// data laid out by [Mesh.Layout]. The mesh takes ownership of data.
// A built mesh must be built again.
func (m *Mesh) SetVertices(data []byte, count int) {
	m.vertices = data
	m.numVertices = count
	m.invalidate()
}

// SetVerticesFrom sets the CPU vertex data of the mesh to the memory
// of the given vertex records, such as [Vertex], without copying.
func SetVerticesFrom[E any](m *Mesh, vertices []E) {
	m.SetVertices(SliceBytes(vertices), len(vertices))
}

// SetIndices sets the triangle indices, with nil for non-indexed
// drawing. The mesh takes ownership of indices.
// A built mesh must be built again.
func (m *Mesh) SetIndices(indices []uint32) {
	m.indices = indices
	m.invalidate()
}

// invalidate marks the mesh as needing a build, or as empty
// when there is nothing left in it.
func (m *Mesh) invalidate() {
	if m.numVertices == 0 && len(m.indices) == 0 && !m.vao.Valid() {
		m.state = Empty
		return
	}
	m.state = Staged
}

// vertexBytes returns the vertex data to upload, checking that
// it covers every vertex.
func (m *Mesh) vertexBytes(data []byte, count int) ([]byte, error) {
	need := count * m.Layout.Stride
	if len(data) < need {
		return nil, fmt.Errorf("gpu.Mesh %q: %w: %d bytes for %d vertices of stride %d", m.Name, ErrShortData, len(data), count, m.Layout.Stride)
	}
	if need == 0 {
		return data, nil
	}
	return data[:need], nil
}

// UpdateVertices replaces the vertex data. A built mesh uploads it into
// its existing vertex buffer and stays built, keeping its attribute
// bindings, so the layout must not have changed. If the upload fails
// the new data is kept and the mesh is Staged, to be built again.
func (m *Mesh) UpdateVertices(data []byte, count int) error {
	if count == 0 || len(data) == 0 {
		slog.Warn("gpu.Mesh.UpdateVertices: no vertex data", "mesh", m.Name)
		return ErrNoVertices
	}
	if m.state != Built {
		m.SetVertices(data, count)
		return nil
	}
	up, err := m.vertexBytes(data, count)
	if err != nil {
		return err
	}
	m.vertices = data
	m.numVertices = count
	if err := m.backend.BufferData(m.vbo.ID(), VertexBuffer, up); err != nil {
		m.state = Staged
		return fmt.Errorf("gpu.Mesh %q: updating vertices: %w", m.Name, err)
	}
	return nil
}

// acquire allocates any GPU objects the mesh does not yet have.
func (m *Mesh) acquire() error {
	if !m.vao.Valid() {
		id, err := m.backend.NewVertexArray()
		if err != nil {
			return fmt.Errorf("gpu.Mesh %q: new vertex array: %w", m.Name, err)
		}
		m.vao = NewHandle(id, m.backend.ReleaseVertexArray)
	}
	if !m.vbo.Valid() {
		id, err := m.backend.NewBuffer(VertexBuffer)
		if err != nil {
			return fmt.Errorf("gpu.Mesh %q: new vertex buffer: %w", m.Name, err)
		}
		m.vbo = NewHandle(id, m.backend.ReleaseBuffer)
	}
	if len(m.indices) > 0 && !m.ebo.Valid() {
		id, err := m.backend.NewBuffer(IndexBuffer)
		if err != nil {
			return fmt.Errorf("gpu.Mesh %q: new index buffer: %w", m.Name, err)
		}
		m.ebo = NewHandle(id, m.backend.ReleaseBuffer)
	}
	return nil
}

// Build uploads the CPU data to the GPU and binds every attribute
// of the layout, allocating GPU objects as needed. If there are
// no vertices it logs a warning and returns [ErrNoVertices], and
// if the layout is empty or invalid it returns [ErrNoAttributes]
// or the validation error, without changing anything. If the
// backend fails the mesh is left Staged.
func (m *Mesh) Build() error {
	if m.numVertices == 0 || len(m.vertices) == 0 {
		slog.Warn("gpu.Mesh.Build: no vertices", "mesh", m.Name)
		return ErrNoVertices
	}
	if m.Layout.Len() == 0 {
		slog.Warn("gpu.Mesh.Build: no attributes", "mesh", m.Name)
		return ErrNoAttributes
	}
	if err := m.Layout.Validate(); err != nil {
		slog.Warn("gpu.Mesh.Build: invalid layout", "mesh", m.Name, "err", err)
		return fmt.Errorf("gpu.Mesh %q: %w", m.Name, err)
	}
	up, err := m.vertexBytes(m.vertices, m.numVertices)
	if err != nil {
		return err
	}
	if err := m.upload(up); err != nil {
		if m.state == Built {
			m.state = Staged
		}
		return err
	}
	m.state = Built
	if Debug {
		slog.Info("gpu.Mesh: built", "mesh", m.Name, "vertices", m.numVertices, "indices", len(m.indices), "stride", m.Layout.Stride)
	}
	return nil
}

// upload allocates the GPU objects, uploads the vertex and index
// data, and binds the attributes.
func (m *Mesh) upload(up []byte) error {
	if err := m.acquire(); err != nil {
		return err
	}
	if err := m.backend.BufferData(m.vbo.ID(), VertexBuffer, up); err != nil {
		return fmt.Errorf("gpu.Mesh %q: uploading vertices: %w", m.Name, err)
	}
	if len(m.indices) > 0 {
		if err := m.backend.BufferData(m.ebo.ID(), IndexBuffer, SliceBytes(m.indices)); err != nil {
			return fmt.Errorf("gpu.Mesh %q: uploading indices: %w", m.Name, err)
		}
	}
	for i := range m.Layout.Attributes {
		va := &m.Layout.Attributes[i]
		if err := m.backend.VertexAttribute(m.vao.ID(), m.vbo.ID(), va.Binding(m.Layout.Stride)); err != nil {
			return fmt.Errorf("gpu.Mesh %q: binding attribute %q: %w", m.Name, va.Name, err)
		}
	}
	return nil
}

// Draw draws the mesh as triangles, using the indices if there are any.
// If the mesh is not built, or has no vertices, it logs a warning and
// returns [ErrNotBuilt] without drawing.
func (m *Mesh) Draw() error {
	if m.state != Built || m.numVertices == 0 {
		slog.Warn("gpu.Mesh.Draw: mesh not built", "mesh", m.Name, "state", m.state)
		return ErrNotBuilt
	}
	var err error
	if len(m.indices) > 0 && m.ebo.Valid() {
		err = m.backend.DrawIndexed(m.vao.ID(), m.ebo.ID(), len(m.indices))
	} else {
		err = m.backend.Draw(m.vao.ID(), 0, m.numVertices)
	}
	if err != nil {
		return fmt.Errorf("gpu.Mesh %q: draw: %w", m.Name, err)
	}
	return nil
}

// Release frees the GPU objects of the mesh and clears its data,
// leaving it Empty. The layout of a dynamic mesh is cleared too, while
// a mesh made by [NewMesh] gets back the [Vertex] layout.
// It is safe to call more than once.
func (m *Mesh) Release() {
	m.ebo.Release()
	m.vbo.Release()
	m.vao.Release()
	m.vertices = nil
	m.numVertices = 0
	m.indices = nil
	if m.static {
		m.Layout = VertexLayout()
	} else {
		m.Layout.Reset()
	}
	m.state = Empty
	if Debug {
		slog.Info("gpu.Mesh: released", "mesh", m.Name)
	}
}
