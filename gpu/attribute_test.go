// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestLayoutAdd(t *testing.T) {
	ly := Layout{}
	ly.Add("pos", Vector3)
	ly.Add("normal", Vector3)
	ly.Add("uv", Vector2)

	assert.Equal(t, 3, ly.Len())
	assert.Equal(t, 32, ly.Stride)
	for i, want := range []int{0, 12, 24} {
		assert.Equal(t, want, ly.Attributes[i].Offset)
		assert.Equal(t, i, ly.Attributes[i].Location)
	}
	assert.NoError(t, ly.Validate())

	uv, ok := ly.AttributeByName("uv")
	assert.True(t, ok)
	assert.Equal(t, Vector2, uv.Kind)
	_, ok = ly.AttributeByName("color")
	assert.False(t, ok)
}

func TestLayoutOptions(t *testing.T) {
	ly := Layout{}
	ly.Add("id", Uint, WithLocation(5), WithOffset(16))
	color := ly.Add("color", Vector4, WithNormalized())
	assert.Equal(t, 20, color.Offset)
	assert.Equal(t, 1, color.Location)
	assert.True(t, color.Normalized)
	assert.Equal(t, 36, ly.Stride)

	// an explicit earlier offset does not shrink the stride
	ly.Add("weight", Float, WithOffset(0))
	assert.Equal(t, 36, ly.Stride)

	ly.Reset()
	assert.Equal(t, 0, ly.Len())
	assert.Equal(t, 0, ly.Stride)
}

func TestNextAttribute(t *testing.T) {
	first := nextAttribute(nil, 0, "a", Vector4)
	assert.Equal(t, 0, first.Offset)
	next := nextAttribute(&first, 1, "b", Int)
	assert.Equal(t, 16, next.Offset)
	assert.Equal(t, 1, next.Location)
	after := nextAttribute(&next, 2, "c", Float)
	assert.Equal(t, 20, after.Offset)
}

func TestBinding(t *testing.T) {
	ly := Layout{}
	ly.Add("color", Vector4, WithNormalized())
	ly.Add("flags", IntVector2, WithNormalized())

	b := ly.Attributes[0].Binding(ly.Stride)
	assert.Equal(t, AttributeBinding{Location: 0, Components: 4, Scalar: Float32, Normalized: true, Stride: 24, Offset: 0}, b)

	b = ly.Attributes[1].Binding(ly.Stride)
	assert.True(t, b.Integer)
	assert.False(t, b.Normalized)
	assert.Equal(t, Int32, b.Scalar)
	assert.Equal(t, 16, b.Offset)
}

func TestLayoutValidate(t *testing.T) {
	ly := Layout{}
	ly.Add("a", Vector3)
	ly.Add("b", Vector2, WithOffset(8), WithLocation(0))
	err := ly.Validate()
	assert.ErrorContains(t, err, "overlap")
	assert.ErrorContains(t, err, "location 0 already used")

	ly = Layout{}
	ly.Add("a", Float, WithOffset(-4))
	ly.Add("b", Float, WithLocation(-1))
	err = ly.Validate()
	assert.ErrorContains(t, err, "negative offset")
	assert.ErrorContains(t, err, "negative location")

	ly = Layout{}
	ly.Add("a", Vector4)
	ly.Stride = 8
	assert.ErrorContains(t, ly.Validate(), "past stride")

	ly = Layout{Attributes: []VertexAttribute{{Name: "x", Kind: AttributeKinds(99)}}}
	assert.ErrorContains(t, ly.Validate(), "invalid kind")
}

func TestVertexLayout(t *testing.T) {
	ly := VertexLayout()
	assert.Equal(t, int(unsafe.Sizeof(Vertex{})), ly.Stride)
	assert.Equal(t, 64, ly.Stride)

	names := []string{"Position", "Normal", "UV", "Tangent", "Color"}
	kinds := []AttributeKinds{Vector3, Vector3, Vector2, Vector4, Vector4}
	offsets := []int{0, 12, 24, 32, 48}
	for i, va := range ly.Attributes {
		assert.Equal(t, names[i], va.Name)
		assert.Equal(t, kinds[i], va.Kind)
		assert.Equal(t, offsets[i], va.Offset)
		assert.Equal(t, i, va.Location)
	}
	assert.NoError(t, ly.Validate())
	assert.Contains(t, ly.String(), "Stride: 64")
}

func TestSliceBytes(t *testing.T) {
	assert.Nil(t, SliceBytes([]uint32(nil)))
	b := SliceBytes([]uint32{1, 2})
	assert.Len(t, b, 8)
	vs := make([]Vertex, 3)
	assert.Len(t, SliceBytes(vs), 3*64)
}
