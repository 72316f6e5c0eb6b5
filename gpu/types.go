// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// ScalarTypes are the scalar component types of vertex attributes.
// Every scalar type is stored in 4 bytes.
type ScalarTypes int32

const (
	Float32 ScalarTypes = iota
	Int32
	Uint32

	// Bool32 is a boolean stored as a 32 bit signed integer,
	// as GPU vertex inputs have no boolean type.
	Bool32
)

// ComponentBytes is the size in bytes of every attribute component.
const ComponentBytes = 4

// IsInteger returns whether values of this type must be read
// as integers by the shader, rather than converted to floats.
func (st ScalarTypes) IsInteger() bool {
	return st != Float32
}

func (st ScalarTypes) String() string {
	switch st {
	case Float32:
		return "Float32"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	case Bool32:
		return "Bool32"
	}
	return "ScalarTypes(?)"
}

// AttributeKinds are the shader-side types of vertex attributes.
type AttributeKinds int32

const (
	Float AttributeKinds = iota
	Vector2
	Vector3
	Vector4
	Int
	IntVector2
	IntVector3
	IntVector4
	Uint
	Bool

	AttributeKindsN
)

type kindInfo struct {
	name       string
	components int
	scalar     ScalarTypes
}

var kindInfos = [AttributeKindsN]kindInfo{
	Float:      {"Float", 1, Float32},
	Vector2:    {"Vector2", 2, Float32},
	Vector3:    {"Vector3", 3, Float32},
	Vector4:    {"Vector4", 4, Float32},
	Int:        {"Int", 1, Int32},
	IntVector2: {"IntVector2", 2, Int32},
	IntVector3: {"IntVector3", 3, Int32},
	IntVector4: {"IntVector4", 4, Int32},
	Uint:       {"Uint", 1, Uint32},
	Bool:       {"Bool", 1, Bool32},
}

// IsValid returns whether this is one of the defined kinds.
func (ak AttributeKinds) IsValid() bool {
	return ak >= 0 && ak < AttributeKindsN
}

// Components returns the number of scalar components, 1 to 4.
func (ak AttributeKinds) Components() int {
	if !ak.IsValid() {
		return 0
	}
	return kindInfos[ak].components
}

// Scalar returns the scalar type of each component.
func (ak AttributeKinds) Scalar() ScalarTypes {
	if !ak.IsValid() {
		return Float32
	}
	return kindInfos[ak].scalar
}

// Bytes returns the size of an attribute of this kind in bytes.
func (ak AttributeKinds) Bytes() int {
	return ak.Components() * ComponentBytes
}

// IsInteger returns whether this kind is bound as an integer attribute.
func (ak AttributeKinds) IsInteger() bool {
	return ak.Scalar().IsInteger()
}

func (ak AttributeKinds) String() string {
	if !ak.IsValid() {
		return "AttributeKinds(?)"
	}
	return kindInfos[ak].name
}

// AttributeKindFromString returns the kind with the given name,
// as returned by [AttributeKinds.String], and whether it was found.
func AttributeKindFromString(s string) (AttributeKinds, bool) {
	for i, ki := range kindInfos {
		if ki.name == s {
			return AttributeKinds(i), true
		}
	}
	return Float, false
}
