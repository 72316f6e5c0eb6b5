// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opengl

import (
	"testing"

	"cogentcore.org/orbit/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestGLType(t *testing.T) {
	assert.Equal(t, uint32(gl.FLOAT), GLType(gpu.Float32))
	assert.Equal(t, uint32(gl.INT), GLType(gpu.Int32))
	assert.Equal(t, uint32(gl.INT), GLType(gpu.Bool32))
	assert.Equal(t, uint32(gl.UNSIGNED_INT), GLType(gpu.Uint32))

	assert.Equal(t, uint32(gl.ARRAY_BUFFER), uploadTarget(gpu.VertexBuffer))
	assert.Equal(t, uint32(gl.COPY_WRITE_BUFFER), uploadTarget(gpu.IndexBuffer))
}

func TestBackendRelease(t *testing.T) {
	bk := NewBackend()
	assert.Equal(t, 0, bk.Live())
	// releasing unknown ids makes no GL calls
	bk.ReleaseBuffer(7)
	bk.ReleaseVertexArray(3)
	assert.Equal(t, 0, bk.Live())
}

func TestMesh(t *testing.T) {
	t.Skip("Need OpenGL context on CI")
	assert.NoError(t, Init())
	bk := NewBackend()
	m := gpu.NewMesh("tri", bk)
	gpu.SetVerticesFrom(m, make([]gpu.Vertex, 3))
	assert.NoError(t, m.Build())
	assert.NoError(t, m.Draw())
	m.Release()
	assert.Equal(t, 0, bk.Live())
}
