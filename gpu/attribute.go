// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"cogentcore.org/orbit/base/errors"
)

// VertexAttribute describes one input of the vertex shader,
// read from interleaved vertex data.
type VertexAttribute struct {
	// Name is the name of the attribute, for lookup and debugging.
	Name string

	// Kind is the shader-side type of the attribute.
	Kind AttributeKinds

	// Location is the shader input location the attribute is bound to.
	Location int

	// Offset is the byte offset of the attribute within each vertex.
	Offset int

	// Normalized is whether fixed point values are normalized to
	// [0, 1] or [-1, 1] when converted to floats.
	// It is ignored for integer kinds.
	Normalized bool
}

// End returns the byte offset just past the end of the attribute.
func (va *VertexAttribute) End() int {
	return va.Offset + va.Kind.Bytes()
}

// Binding returns the backend binding for this attribute,
// read with the given vertex stride.
func (va *VertexAttribute) Binding(stride int) AttributeBinding {
	integer := va.Kind.IsInteger()
	return AttributeBinding{
		Location:   va.Location,
		Components: va.Kind.Components(),
		Scalar:     va.Kind.Scalar(),
		Normalized: va.Normalized && !integer,
		Integer:    integer,
		Stride:     stride,
		Offset:     va.Offset,
	}
}

func (va *VertexAttribute) String() string {
	return fmt.Sprintf("%s %s @%d +%d", va.Name, va.Kind, va.Location, va.Offset)
}

// AttributeOption sets a property of an attribute being added
// to a [Layout], overriding the value derived from the previous one.
type AttributeOption func(va *VertexAttribute)

// WithLocation sets the shader input location of the attribute.
func WithLocation(location int) AttributeOption {
	return func(va *VertexAttribute) { va.Location = location }
}

// WithOffset sets the byte offset of the attribute within each vertex.
func WithOffset(offset int) AttributeOption {
	return func(va *VertexAttribute) { va.Offset = offset }
}

// WithNormalized marks the attribute as normalized.
func WithNormalized() AttributeOption {
	return func(va *VertexAttribute) { va.Normalized = true }
}

// nextAttribute returns the attribute added after prev (nil if first),
// at the given index in the layout. The location defaults to the index,
// and the offset to just past the end of prev.
func nextAttribute(prev *VertexAttribute, index int, name string, kind AttributeKinds, opts ...AttributeOption) VertexAttribute {
	va := VertexAttribute{Name: name, Kind: kind, Location: index}
	if prev != nil {
		va.Offset = prev.Offset + prev.Kind.Components()*ComponentBytes
	}
	for _, opt := range opts {
		opt(&va)
	}
	return va
}

// Layout is the ordered set of attributes of interleaved vertex data,
// and the stride between consecutive vertices.
type Layout struct {
	// Attributes in the order they were added.
	Attributes []VertexAttribute

	// Stride is the number of bytes per vertex.
	// It grows to cover every added attribute, and can be
	// set larger to add padding.
	Stride int
}

// Add adds a new attribute of the given name and kind, with its
// location and offset derived from the previous attribute unless
// given by the options, and returns it.
func (ly *Layout) Add(name string, kind AttributeKinds, opts ...AttributeOption) VertexAttribute {
	var prev *VertexAttribute
	if n := len(ly.Attributes); n > 0 {
		prev = &ly.Attributes[n-1]
	}
	va := nextAttribute(prev, len(ly.Attributes), name, kind, opts...)
	ly.Attributes = append(ly.Attributes, va)
	ly.Stride = max(ly.Stride, va.End())
	return va
}

// Len returns the number of attributes.
func (ly *Layout) Len() int {
	return len(ly.Attributes)
}

// AttributeByName returns the attribute with the given name,
// and false if there is none.
func (ly *Layout) AttributeByName(name string) (VertexAttribute, bool) {
	for _, va := range ly.Attributes {
		if va.Name == name {
			return va, true
		}
	}
	return VertexAttribute{}, false
}

// Reset removes all attributes and sets the stride to zero.
func (ly *Layout) Reset() {
	ly.Attributes = nil
	ly.Stride = 0
}

// Validate returns an error describing every problem in the layout:
// invalid kinds, negative offsets or locations, duplicate locations,
// attributes extending past the stride, and overlapping attributes.
func (ly *Layout) Validate() error {
	var errs []error
	locs := map[int]string{}
	for i := range ly.Attributes {
		va := &ly.Attributes[i]
		if !va.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("attribute %q: invalid kind %d", va.Name, int32(va.Kind)))
			continue
		}
		if va.Offset < 0 {
			errs = append(errs, fmt.Errorf("attribute %q: negative offset %d", va.Name, va.Offset))
		}
		if va.Location < 0 {
			errs = append(errs, fmt.Errorf("attribute %q: negative location %d", va.Name, va.Location))
		} else if other, has := locs[va.Location]; has {
			errs = append(errs, fmt.Errorf("attribute %q: location %d already used by %q", va.Name, va.Location, other))
		} else {
			locs[va.Location] = va.Name
		}
		if va.End() > ly.Stride {
			errs = append(errs, fmt.Errorf("attribute %q: ends at %d, past stride %d", va.Name, va.End(), ly.Stride))
		}
		for j := range i {
			ov := &ly.Attributes[j]
			if ov.Kind.IsValid() && va.Offset < ov.End() && ov.Offset < va.End() {
				errs = append(errs, fmt.Errorf("attribute %q: bytes [%d, %d) overlap %q [%d, %d)", va.Name, va.Offset, va.End(), ov.Name, ov.Offset, ov.End()))
			}
		}
	}
	return errors.Join(errs...)
}

// String returns a table of the attributes and the stride.
func (ly *Layout) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tKind\tLocation\tOffset\tSize\tNormalized")
	for _, va := range ly.Attributes {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%v\n", va.Name, va.Kind, va.Location, va.Offset, va.Kind.Bytes(), va.Normalized)
	}
	tw.Flush()
	fmt.Fprintf(&b, "Stride: %d\n", ly.Stride)
	return b.String()
}
