// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import (
	"errors"
	"testing"

	"cogentcore.org/orbit/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderIDs(t *testing.T) {
	rc := NewRecorder()
	vao, err := rc.NewVertexArray()
	require.NoError(t, err)
	vbo, err := rc.NewBuffer(gpu.VertexBuffer)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), vao)
	assert.Equal(t, uint32(2), vbo)
	assert.Equal(t, 2, rc.Live())

	require.NoError(t, rc.BufferData(vbo, gpu.VertexBuffer, []byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3}, rc.Data[vbo])
	assert.Error(t, rc.BufferData(vao, gpu.VertexBuffer, []byte{1}))

	rc.ReleaseBuffer(vbo)
	rc.ReleaseVertexArray(vao)
	assert.Equal(t, 0, rc.Live())
	assert.Equal(t, 0, rc.DoubleReleases())
	assert.NotContains(t, rc.Data, vbo)

	rc.ReleaseBuffer(vbo)
	assert.Equal(t, 1, rc.DoubleReleases())
	assert.Equal(t, 2, rc.Count(ReleaseBuffer))
}

func TestRecorderFail(t *testing.T) {
	rc := NewRecorder()
	errFail := errors.New("out of memory")
	rc.Fail = func(c Call) error {
		if c.Kind == NewBuffer {
			return errFail
		}
		return nil
	}
	_, err := rc.NewVertexArray()
	assert.NoError(t, err)
	_, err = rc.NewBuffer(gpu.IndexBuffer)
	assert.ErrorIs(t, err, errFail)
	assert.Equal(t, 1, rc.Live())
	assert.Len(t, rc.Calls, 1)
}

func TestRecorderLast(t *testing.T) {
	rc := NewRecorder()
	_, ok := rc.Last(Draw)
	assert.False(t, ok)
	rc.Draw(1, 0, 3)
	rc.Draw(1, 3, 6)
	c, ok := rc.Last(Draw)
	assert.True(t, ok)
	assert.Equal(t, 6, c.Count)
	assert.Equal(t, "Draw(1, 3, 6)", c.String())
	rc.Reset()
	assert.Empty(t, rc.Calls)
}

func TestRecorderReleaseFail(t *testing.T) {
	rc := NewRecorder()
	vbo, err := rc.NewBuffer(gpu.VertexBuffer)
	require.NoError(t, err)
	errLost := errors.New("context lost")
	rc.Fail = func(c Call) error {
		if c.Kind == ReleaseBuffer {
			return errLost
		}
		return nil
	}
	rc.ReleaseBuffer(vbo)
	require.Len(t, rc.ReleaseErrors, 1)
	assert.ErrorIs(t, rc.ReleaseErrors[0], errLost)
	assert.Equal(t, 1, rc.Live())
	assert.Equal(t, 0, rc.DoubleReleases())
	assert.Equal(t, 0, rc.Count(ReleaseBuffer))

	rc.Fail = nil
	rc.ReleaseBuffer(vbo)
	assert.Equal(t, 0, rc.Live())
}
