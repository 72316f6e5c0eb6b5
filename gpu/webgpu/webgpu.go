// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webgpu provides a [gpu.Backend] drawing through WebGPU.
//
// A vertex array is recorded as a [wgpu.VertexBufferLayout], for use
// when making the render pipeline, together with the vertex buffer
// it reads from. Draw calls are recorded into the render pass set
// with [Backend.SetRenderPass].
package webgpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/orbit/base/errors"
	"cogentcore.org/orbit/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoRenderPass is returned by draw calls when there is no
// current render pass.
var ErrNoRenderPass = errors.New("webgpu: no render pass set")

type buffer struct {
	role   gpu.BufferRoles
	buffer *wgpu.Buffer
	size   int
}

type vertexArray struct {
	layout wgpu.VertexBufferLayout
	vbo    uint32
}

// Backend is a [gpu.Backend] using a WebGPU device.
type Backend struct {
	Device *wgpu.Device
	Queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	pass     *wgpu.RenderPassEncoder

	nextID  uint32
	buffers map[uint32]*buffer
	arrays  map[uint32]*vertexArray
}

var _ gpu.Backend = (*Backend)(nil)

// NewBackend returns a new backend using the given device,
// which remains owned by the caller.
func NewBackend(device *wgpu.Device) *Backend {
	bk := &Backend{Device: device, buffers: map[uint32]*buffer{}, arrays: map[uint32]*vertexArray{}}
	if device != nil {
		bk.Queue = device.GetQueue()
	}
	return bk
}

// NewHeadless returns a new backend with its own device, acquired
// without any surface, for offscreen rendering and tests.
// The device is freed by [Backend.Release].
func NewHeadless() (*Backend, error) {
	instance := wgpu.CreateInstance(nil)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if errors.Log(err) != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: requesting adapter: %w", err)
	}
	device, err := adapter.RequestDevice(nil)
	if errors.Log(err) != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: requesting device: %w", err)
	}
	bk := NewBackend(device)
	bk.instance = instance
	bk.adapter = adapter
	if gpu.Debug {
		slog.Info("webgpu: acquired headless device")
	}
	return bk, nil
}

// SetRenderPass sets the render pass that draw calls are recorded
// into, or nil to disable drawing.
func (bk *Backend) SetRenderPass(rp *wgpu.RenderPassEncoder) {
	bk.pass = rp
}

// VertexLayout returns the vertex buffer layout recorded for the
// given vertex array, and false if there is no such vertex array.
func (bk *Backend) VertexLayout(vao uint32) (wgpu.VertexBufferLayout, bool) {
	va, ok := bk.arrays[vao]
	if !ok {
		return wgpu.VertexBufferLayout{}, false
	}
	return va.layout, true
}

// Live returns the number of vertex arrays and buffers not yet released.
func (bk *Backend) Live() int {
	return len(bk.arrays) + len(bk.buffers)
}

func (bk *Backend) newID() uint32 {
	bk.nextID++
	return bk.nextID
}

func (bk *Backend) NewVertexArray() (uint32, error) {
	id := bk.newID()
	bk.arrays[id] = &vertexArray{layout: wgpu.VertexBufferLayout{StepMode: wgpu.VertexStepModeVertex}}
	return id, nil
}

func (bk *Backend) NewBuffer(role gpu.BufferRoles) (uint32, error) {
	id := bk.newID()
	bk.buffers[id] = &buffer{role: role}
	return id, nil
}

func (bk *Backend) ReleaseVertexArray(id uint32) {
	delete(bk.arrays, id)
}

func (bk *Backend) ReleaseBuffer(id uint32) {
	b, ok := bk.buffers[id]
	if !ok {
		return
	}
	if b.buffer != nil {
		b.buffer.Release()
	}
	delete(bk.buffers, id)
}

// BufferUsages returns the WebGPU usages of a buffer in the given role.
func BufferUsages(role gpu.BufferRoles) wgpu.BufferUsage {
	if role == gpu.IndexBuffer {
		return wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst
	}
	return wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst
}

func (bk *Backend) BufferData(id uint32, role gpu.BufferRoles, data []byte) error {
	b, ok := bk.buffers[id]
	if !ok {
		return fmt.Errorf("webgpu: BufferData: no buffer %d", id)
	}
	if bk.Device == nil {
		return fmt.Errorf("webgpu: BufferData: no device")
	}
	b.role = role
	if b.buffer == nil || b.size != len(data) {
		if b.buffer != nil {
			b.buffer.Release()
			b.buffer = nil
		}
		buf, err := bk.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    fmt.Sprintf("%s %d", role, id),
			Contents: data,
			Usage:    BufferUsages(role),
		})
		if errors.Log(err) != nil {
			return err
		}
		b.buffer = buf
		b.size = len(data)
		return nil
	}
	return errors.Log(bk.Queue.WriteBuffer(b.buffer, 0, data))
}

// VertexFormat returns the WebGPU vertex format for the given binding.
// WebGPU has no normalized 32 bit formats, so Normalized is ignored.
func VertexFormat(b gpu.AttributeBinding) wgpu.VertexFormat {
	switch b.Scalar {
	case gpu.Float32:
		return [...]wgpu.VertexFormat{wgpu.VertexFormatFloat32, wgpu.VertexFormatFloat32x2, wgpu.VertexFormatFloat32x3, wgpu.VertexFormatFloat32x4}[clampComponents(b.Components)]
	case gpu.Uint32:
		return [...]wgpu.VertexFormat{wgpu.VertexFormatUint32, wgpu.VertexFormatUint32x2, wgpu.VertexFormatUint32x3, wgpu.VertexFormatUint32x4}[clampComponents(b.Components)]
	default: // Int32, Bool32
		return [...]wgpu.VertexFormat{wgpu.VertexFormatSint32, wgpu.VertexFormatSint32x2, wgpu.VertexFormatSint32x3, wgpu.VertexFormatSint32x4}[clampComponents(b.Components)]
	}
}

func clampComponents(n int) int {
	return min(max(n, 1), 4) - 1
}

func (bk *Backend) VertexAttribute(vao, vbo uint32, b gpu.AttributeBinding) error {
	va, ok := bk.arrays[vao]
	if !ok {
		return fmt.Errorf("webgpu: VertexAttribute: no vertex array %d", vao)
	}
	if _, ok := bk.buffers[vbo]; !ok {
		return fmt.Errorf("webgpu: VertexAttribute: no buffer %d", vbo)
	}
	va.vbo = vbo
	va.layout.ArrayStride = uint64(b.Stride)
	at := wgpu.VertexAttribute{
		Format:         VertexFormat(b),
		Offset:         uint64(b.Offset),
		ShaderLocation: uint32(b.Location),
	}
	for i, ex := range va.layout.Attributes {
		if ex.ShaderLocation == at.ShaderLocation {
			va.layout.Attributes[i] = at
			return nil
		}
	}
	va.layout.Attributes = append(va.layout.Attributes, at)
	return nil
}

// bindVertices sets the vertex buffer of the vertex array
// in the current render pass.
func (bk *Backend) bindVertices(vao uint32) error {
	if bk.pass == nil {
		return ErrNoRenderPass
	}
	va, ok := bk.arrays[vao]
	if !ok {
		return fmt.Errorf("webgpu: no vertex array %d", vao)
	}
	vb, ok := bk.buffers[va.vbo]
	if !ok || vb.buffer == nil {
		return fmt.Errorf("webgpu: vertex array %d has no vertex data", vao)
	}
	bk.pass.SetVertexBuffer(0, vb.buffer, 0, wgpu.WholeSize)
	return nil
}

func (bk *Backend) Draw(vao uint32, first, count int) error {
	if err := bk.bindVertices(vao); err != nil {
		return err
	}
	bk.pass.Draw(uint32(count), 1, uint32(first), 0)
	return nil
}

func (bk *Backend) DrawIndexed(vao, ebo uint32, count int) error {
	if err := bk.bindVertices(vao); err != nil {
		return err
	}
	ib, ok := bk.buffers[ebo]
	if !ok || ib.buffer == nil {
		return fmt.Errorf("webgpu: no index data in buffer %d", ebo)
	}
	bk.pass.SetIndexBuffer(ib.buffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	bk.pass.DrawIndexed(uint32(count), 1, 0, 0, 0)
	return nil
}

// Release releases all remaining buffers, and the device if it
// is owned by this backend.
func (bk *Backend) Release() {
	for id := range bk.buffers {
		bk.ReleaseBuffer(id)
	}
	clear(bk.arrays)
	bk.pass = nil
	if bk.instance == nil {
		return
	}
	if bk.Device != nil {
		bk.Device.Release()
		bk.Device = nil
	}
	bk.adapter.Release()
	bk.instance.Release()
	bk.adapter = nil
	bk.instance = nil
}
