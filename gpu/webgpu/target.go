// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"fmt"

	"cogentcore.org/orbit/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexColorShader is a WGSL shader for [gpu.Vertex] data, drawing
// each vertex at its position in clip space with its color.
const VertexColorShader = `
struct VertexOutput {
	@builtin(position) position: vec4<f32>,
	@location(0) color: vec4<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(4) color: vec4<f32>) -> VertexOutput {
	var out: VertexOutput;
	out.position = vec4<f32>(position, 1.0);
	out.color = color;
	return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
	return in.color;
}
`

// TargetFormat is the texture format of a [Target].
const TargetFormat = wgpu.TextureFormatRGBA8Unorm

// Target is an offscreen color texture to render into.
type Target struct {
	Width, Height int

	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// NewTarget returns a new offscreen target of the given size,
// which must be released with [Target.Release].
func (bk *Backend) NewTarget(width, height int) (*Target, error) {
	if bk.Device == nil {
		return nil, fmt.Errorf("webgpu: NewTarget: no device")
	}
	tx, err := bk.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "target",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        TargetFormat,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	vw, err := tx.CreateView(nil)
	if errors.Log(err) != nil {
		tx.Release()
		return nil, err
	}
	return &Target{Width: width, Height: height, texture: tx, view: vw}, nil
}

// Release frees the texture of the target.
func (tg *Target) Release() {
	if tg.view != nil {
		tg.view.Release()
		tg.view = nil
	}
	if tg.texture != nil {
		tg.texture.Release()
		tg.texture = nil
	}
}

// NewPipeline returns a render pipeline drawing triangles with the
// given WGSL shader, whose entry points are vs_main and fs_main,
// reading vertices through the layout recorded for the vertex array,
// into a [Target]. The vertex array must have been built.
func (bk *Backend) NewPipeline(vao uint32, shader string) (*wgpu.RenderPipeline, error) {
	if bk.Device == nil {
		return nil, fmt.Errorf("webgpu: NewPipeline: no device")
	}
	vl, ok := bk.VertexLayout(vao)
	if !ok || len(vl.Attributes) == 0 {
		return nil, fmt.Errorf("webgpu: NewPipeline: vertex array %d has no attributes", vao)
	}
	module, err := bk.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shader},
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	defer module.Release()
	return bk.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "pipeline",
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vl},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    TargetFormat,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
}

// RenderPass begins a render pass that clears the target to the given
// color and uses the pipeline, and sets it as the current pass while
// draw is called, so that draw calls such as [gpu.Mesh.Draw] are
// recorded into it. The commands are then submitted to the device queue.
func (bk *Backend) RenderPass(tg *Target, pl *wgpu.RenderPipeline, clear wgpu.Color, draw func() error) error {
	cmd, err := bk.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer cmd.Release()
	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       tg.view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clear,
		}},
	})
	rp.SetPipeline(pl)
	bk.SetRenderPass(rp)
	derr := draw()
	bk.SetRenderPass(nil)
	rp.End()
	rp.Release() // must happen before Finish
	if derr != nil {
		return derr
	}
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer cmdBuffer.Release()
	bk.Queue.Submit(cmdBuffer)
	return nil
}
