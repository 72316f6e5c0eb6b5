// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opengl provides a [gpu.Backend] drawing through OpenGL 4.1
// core profile. The host must create the GL context, make it current
// on the calling goroutine and call [Init] before using a [Backend].
package opengl

import (
	"fmt"
	"log/slog"

	"cogentcore.org/orbit/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl: init: %w", err)
	}
	if gpu.Debug {
		slog.Info("opengl: initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	}
	return nil
}

// Backend is a [gpu.Backend] using the current OpenGL context.
type Backend struct {
	live map[uint32]gpu.BufferRoles
	vaos map[uint32]bool
}

var _ gpu.Backend = (*Backend)(nil)

// NewBackend returns a new backend for the current OpenGL context.
func NewBackend() *Backend {
	return &Backend{live: map[uint32]gpu.BufferRoles{}, vaos: map[uint32]bool{}}
}

// Live returns the number of vertex arrays and buffers not yet released.
func (bk *Backend) Live() int {
	return len(bk.live) + len(bk.vaos)
}

// checkError returns an error for any pending OpenGL errors.
func checkError(op string) error {
	var codes []uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("opengl: %s: error %#x", op, codes)
}

func (bk *Backend) NewVertexArray() (uint32, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if err := checkError("GenVertexArrays"); err != nil {
		return 0, err
	}
	bk.vaos[id] = true
	return id, nil
}

func (bk *Backend) NewBuffer(role gpu.BufferRoles) (uint32, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if err := checkError("GenBuffers"); err != nil {
		return 0, err
	}
	bk.live[id] = role
	return id, nil
}

func (bk *Backend) ReleaseVertexArray(id uint32) {
	if !bk.vaos[id] {
		return
	}
	gl.DeleteVertexArrays(1, &id)
	delete(bk.vaos, id)
}

func (bk *Backend) ReleaseBuffer(id uint32) {
	if _, ok := bk.live[id]; !ok {
		return
	}
	gl.DeleteBuffers(1, &id)
	delete(bk.live, id)
}

// uploadTarget returns the binding target used to upload data for the
// given role. Index data goes through the copy target, so that the
// element buffer binding of the current vertex array is not changed.
func uploadTarget(role gpu.BufferRoles) uint32 {
	if role == gpu.IndexBuffer {
		return gl.COPY_WRITE_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func (bk *Backend) BufferData(id uint32, role gpu.BufferRoles, data []byte) error {
	target := uploadTarget(role)
	gl.BindBuffer(target, id)
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(target, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(target, 0)
	return checkError("BufferData")
}

// GLType returns the OpenGL component type for the given scalar type.
// Booleans are read as signed integers.
func GLType(st gpu.ScalarTypes) uint32 {
	switch st {
	case gpu.Int32, gpu.Bool32:
		return gl.INT
	case gpu.Uint32:
		return gl.UNSIGNED_INT
	}
	return gl.FLOAT
}

func (bk *Backend) VertexAttribute(vao, vbo uint32, b gpu.AttributeBinding) error {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	loc := uint32(b.Location)
	gl.EnableVertexAttribArray(loc)
	if b.Integer {
		gl.VertexAttribIPointer(loc, int32(b.Components), GLType(b.Scalar), int32(b.Stride), gl.PtrOffset(b.Offset))
	} else {
		gl.VertexAttribPointer(loc, int32(b.Components), gl.FLOAT, b.Normalized, int32(b.Stride), gl.PtrOffset(b.Offset))
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return checkError("VertexAttribute")
}

func (bk *Backend) Draw(vao uint32, first, count int) error {
	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	gl.BindVertexArray(0)
	return checkError("DrawArrays")
}

func (bk *Backend) DrawIndexed(vao, ebo uint32, count int) error {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return checkError("DrawElements")
}
