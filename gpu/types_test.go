// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeKinds(t *testing.T) {
	tests := []struct {
		kind       AttributeKinds
		components int
		scalar     ScalarTypes
	}{
		{Float, 1, Float32},
		{Vector2, 2, Float32},
		{Vector3, 3, Float32},
		{Vector4, 4, Float32},
		{Int, 1, Int32},
		{IntVector2, 2, Int32},
		{IntVector3, 3, Int32},
		{IntVector4, 4, Int32},
		{Uint, 1, Uint32},
		{Bool, 1, Bool32},
	}
	assert.Len(t, tests, int(AttributeKindsN))
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.components, tt.kind.Components())
			assert.Equal(t, tt.scalar, tt.kind.Scalar())
			assert.Equal(t, tt.components*4, tt.kind.Bytes())
			assert.Equal(t, tt.scalar != Float32, tt.kind.IsInteger())

			k, ok := AttributeKindFromString(tt.kind.String())
			assert.True(t, ok)
			assert.Equal(t, tt.kind, k)
		})
	}

	bad := AttributeKinds(42)
	assert.False(t, bad.IsValid())
	assert.Equal(t, 0, bad.Components())
	_, ok := AttributeKindFromString("Matrix4")
	assert.False(t, ok)
}
