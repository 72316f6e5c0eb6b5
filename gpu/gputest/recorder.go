// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.Backend] that records calls
// instead of drawing, for tests and dry runs.
package gputest

import (
	"fmt"
	"slices"

	"cogentcore.org/orbit/gpu"
)

// CallKinds are the kinds of backend calls that a [Recorder] records.
type CallKinds int32

const (
	NewVertexArray CallKinds = iota
	NewBuffer
	ReleaseVertexArray
	ReleaseBuffer
	BufferData
	VertexAttribute
	Draw
	DrawIndexed
)

var callNames = [...]string{"NewVertexArray", "NewBuffer", "ReleaseVertexArray", "ReleaseBuffer", "BufferData", "VertexAttribute", "Draw", "DrawIndexed"}

func (ck CallKinds) String() string {
	if ck < 0 || int(ck) >= len(callNames) {
		return "CallKinds(?)"
	}
	return callNames[ck]
}

// Call is one recorded backend call. Fields not used by
// a kind of call are zero.
type Call struct {
	Kind CallKinds

	// ID is the vertex array or buffer of the call.
	ID uint32

	// Buffer is the vertex or index buffer used by
	// VertexAttribute and DrawIndexed.
	Buffer uint32

	Role    gpu.BufferRoles
	Binding gpu.AttributeBinding

	// Size is the number of bytes of BufferData.
	Size int

	First int
	Count int
}

func (c Call) String() string {
	switch c.Kind {
	case NewVertexArray, ReleaseVertexArray, ReleaseBuffer:
		return fmt.Sprintf("%s(%d)", c.Kind, c.ID)
	case NewBuffer:
		return fmt.Sprintf("%s(%d, %s)", c.Kind, c.ID, c.Role)
	case BufferData:
		return fmt.Sprintf("%s(%d, %s, %d bytes)", c.Kind, c.ID, c.Role, c.Size)
	case VertexAttribute:
		return fmt.Sprintf("%s(%d, %d, %+v)", c.Kind, c.ID, c.Buffer, c.Binding)
	case Draw:
		return fmt.Sprintf("%s(%d, %d, %d)", c.Kind, c.ID, c.First, c.Count)
	case DrawIndexed:
		return fmt.Sprintf("%s(%d, %d, %d)", c.Kind, c.ID, c.Buffer, c.Count)
	}
	return c.Kind.String()
}

// Recorder is a [gpu.Backend] that records every call, hands out
// sequential ids starting at 1, keeps the last data uploaded to each
// buffer, and tracks which objects are live so that leaks and double
// releases can be detected.
type Recorder struct {
	// Calls are all the calls made, in order.
	Calls []Call

	// Data is the last data uploaded to each buffer.
	Data map[uint32][]byte

	// Fail, if set, is called before each call is recorded,
	// and its error is returned from the call instead.
	Fail func(c Call) error

	// ReleaseErrors are the errors returned by Fail for releases,
	// which have no error result. A failed release leaves the
	// object live.
	ReleaseErrors []error

	nextID uint32
	live   map[uint32]CallKinds

	// doubleReleases counts releases of ids that were not live.
	doubleReleases int
}

var _ gpu.Backend = (*Recorder)(nil)

// NewRecorder returns a new empty [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{Data: map[uint32][]byte{}, live: map[uint32]CallKinds{}}
}

func (rc *Recorder) record(c Call) error {
	if rc.Fail != nil {
		if err := rc.Fail(c); err != nil {
			return err
		}
	}
	rc.Calls = append(rc.Calls, c)
	return nil
}

func (rc *Recorder) alloc(kind CallKinds, role gpu.BufferRoles) (uint32, error) {
	c := Call{Kind: kind, ID: rc.nextID + 1, Role: role}
	if err := rc.record(c); err != nil {
		return 0, err
	}
	rc.nextID++
	rc.live[c.ID] = kind
	return c.ID, nil
}

func (rc *Recorder) free(kind CallKinds, id uint32) {
	if err := rc.record(Call{Kind: kind, ID: id}); err != nil {
		rc.ReleaseErrors = append(rc.ReleaseErrors, fmt.Errorf("gputest: %s(%d): %w", kind, id, err))
		return
	}
	if _, ok := rc.live[id]; !ok {
		rc.doubleReleases++
		return
	}
	delete(rc.live, id)
	delete(rc.Data, id)
}

func (rc *Recorder) NewVertexArray() (uint32, error) {
	return rc.alloc(NewVertexArray, gpu.VertexBuffer)
}

func (rc *Recorder) NewBuffer(role gpu.BufferRoles) (uint32, error) {
	return rc.alloc(NewBuffer, role)
}

func (rc *Recorder) ReleaseVertexArray(id uint32) {
	rc.free(ReleaseVertexArray, id)
}

func (rc *Recorder) ReleaseBuffer(id uint32) {
	rc.free(ReleaseBuffer, id)
}

func (rc *Recorder) BufferData(id uint32, role gpu.BufferRoles, data []byte) error {
	if err := rc.record(Call{Kind: BufferData, ID: id, Role: role, Size: len(data)}); err != nil {
		return err
	}
	if rc.live[id] != NewBuffer {
		return fmt.Errorf("gputest: BufferData on %d, which is not a live buffer", id)
	}
	rc.Data[id] = slices.Clone(data)
	return nil
}

func (rc *Recorder) VertexAttribute(vao, vbo uint32, b gpu.AttributeBinding) error {
	return rc.record(Call{Kind: VertexAttribute, ID: vao, Buffer: vbo, Binding: b})
}

func (rc *Recorder) Draw(vao uint32, first, count int) error {
	return rc.record(Call{Kind: Draw, ID: vao, First: first, Count: count})
}

func (rc *Recorder) DrawIndexed(vao, ebo uint32, count int) error {
	return rc.record(Call{Kind: DrawIndexed, ID: vao, Buffer: ebo, Count: count})
}

// Live returns the number of allocated objects not yet released.
func (rc *Recorder) Live() int {
	return len(rc.live)
}

// DoubleReleases returns the number of releases of objects
// that were not live.
func (rc *Recorder) DoubleReleases() int {
	return rc.doubleReleases
}

// Count returns the number of recorded calls of the given kind.
func (rc *Recorder) Count(kind CallKinds) int {
	n := 0
	for _, c := range rc.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the last recorded call of the given kind,
// and false if there is none.
func (rc *Recorder) Last(kind CallKinds) (Call, bool) {
	for i := len(rc.Calls) - 1; i >= 0; i-- {
		if rc.Calls[i].Kind == kind {
			return rc.Calls[i], true
		}
	}
	return Call{}, false
}

// Reset clears the recorded calls, keeping the live objects.
func (rc *Recorder) Reset() {
	rc.Calls = nil
}
