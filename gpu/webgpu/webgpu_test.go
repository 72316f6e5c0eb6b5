// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"testing"

	"cogentcore.org/orbit/gpu"
	"cogentcore.org/orbit/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexFormat(t *testing.T) {
	tests := []struct {
		kind   gpu.AttributeKinds
		format wgpu.VertexFormat
	}{
		{gpu.Float, wgpu.VertexFormatFloat32},
		{gpu.Vector2, wgpu.VertexFormatFloat32x2},
		{gpu.Vector3, wgpu.VertexFormatFloat32x3},
		{gpu.Vector4, wgpu.VertexFormatFloat32x4},
		{gpu.Int, wgpu.VertexFormatSint32},
		{gpu.IntVector2, wgpu.VertexFormatSint32x2},
		{gpu.IntVector3, wgpu.VertexFormatSint32x3},
		{gpu.IntVector4, wgpu.VertexFormatSint32x4},
		{gpu.Uint, wgpu.VertexFormatUint32},
		{gpu.Bool, wgpu.VertexFormatSint32},
	}
	for _, tt := range tests {
		va := gpu.VertexAttribute{Kind: tt.kind, Normalized: true}
		assert.Equal(t, tt.format, VertexFormat(va.Binding(16)), tt.kind.String())
	}
}

func TestVertexLayout(t *testing.T) {
	bk := NewBackend(nil)
	vao, err := bk.NewVertexArray()
	require.NoError(t, err)
	vbo, err := bk.NewBuffer(gpu.VertexBuffer)
	require.NoError(t, err)

	ly := gpu.VertexLayout()
	for _, va := range ly.Attributes {
		require.NoError(t, bk.VertexAttribute(vao, vbo, va.Binding(ly.Stride)))
	}
	vl, ok := bk.VertexLayout(vao)
	require.True(t, ok)
	assert.Equal(t, uint64(64), vl.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, vl.StepMode)
	require.Len(t, vl.Attributes, 5)
	assert.Equal(t, uint64(48), vl.Attributes[4].Offset)
	assert.Equal(t, uint32(4), vl.Attributes[4].ShaderLocation)

	// rebinding a location replaces it
	require.NoError(t, bk.VertexAttribute(vao, vbo, ly.Attributes[0].Binding(ly.Stride)))
	vl, _ = bk.VertexLayout(vao)
	assert.Len(t, vl.Attributes, 5)

	assert.Error(t, bk.VertexAttribute(99, vbo, gpu.AttributeBinding{}))
	assert.ErrorIs(t, bk.Draw(vao, 0, 3), ErrNoRenderPass)
	assert.Error(t, bk.BufferData(vbo, gpu.VertexBuffer, []byte{1, 2, 3, 4}))

	assert.Equal(t, 2, bk.Live())
	bk.ReleaseBuffer(vbo)
	bk.ReleaseVertexArray(vao)
	bk.ReleaseBuffer(vbo)
	assert.Equal(t, 0, bk.Live())
	_, ok = bk.VertexLayout(vao)
	assert.False(t, ok)
}

func TestHeadlessMesh(t *testing.T) {
	t.Skip("Need software GPU on CI")
	bk, err := NewHeadless()
	require.NoError(t, err)
	defer bk.Release()

	m := gpu.NewMesh("tri", bk)
	gpu.SetVerticesFrom(m, []gpu.Vertex{
		{Position: math32.Vec3(-1, -1, 0)},
		{Position: math32.Vec3(1, -1, 0)},
		{Position: math32.Vec3(0, 1, 0)},
	})
	m.SetIndices([]uint32{0, 1, 2})
	require.NoError(t, m.Build())
	assert.Equal(t, 3, bk.Live())

	// update in place keeps the same buffer size
	require.NoError(t, m.UpdateVertices(m.Vertices(), 3))
	m.Release()
	assert.Equal(t, 0, bk.Live())
}

func TestHeadlessDraw(t *testing.T) {
	t.Skip("Need software GPU on CI")
	bk, err := NewHeadless()
	require.NoError(t, err)
	defer bk.Release()

	m := gpu.NewMesh("tri", bk)
	gpu.SetVerticesFrom(m, []gpu.Vertex{
		{Position: math32.Vec3(-1, -1, 0), Color: math32.Vec4(1, 0, 0, 1)},
		{Position: math32.Vec3(1, -1, 0), Color: math32.Vec4(0, 1, 0, 1)},
		{Position: math32.Vec3(0, 1, 0), Color: math32.Vec4(0, 0, 1, 1)},
	})
	require.NoError(t, m.Build())
	defer m.Release()

	tg, err := bk.NewTarget(16, 16)
	require.NoError(t, err)
	defer tg.Release()
	pl, err := bk.NewPipeline(m.VertexArray(), VertexColorShader)
	require.NoError(t, err)
	defer pl.Release()

	require.NoError(t, bk.RenderPass(tg, pl, wgpu.Color{A: 1}, m.Draw))
	m.SetIndices([]uint32{0, 1, 2})
	require.NoError(t, m.Build())
	require.NoError(t, bk.RenderPass(tg, pl, wgpu.Color{A: 1}, m.Draw))

	// the pass is only current during the draw
	assert.ErrorIs(t, m.Draw(), ErrNoRenderPass)
}

func TestNoDevice(t *testing.T) {
	bk := NewBackend(nil)
	_, err := bk.NewTarget(16, 16)
	assert.Error(t, err)
	vao, err := bk.NewVertexArray()
	require.NoError(t, err)
	_, err = bk.NewPipeline(vao, VertexColorShader)
	assert.ErrorContains(t, err, "no device")
}
