// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/grapher3d/base/errors"
)

var (
	// ErrShapeMismatch is returned when the attributes of a geometry
	// do not describe the same number of vertices.
	ErrShapeMismatch = errors.New("gpu: geometry attributes describe different vertex counts")

	// ErrMissingAttribute is returned when a geometry lacks an
	// attribute that the buffer declares.
	ErrMissingAttribute = errors.New("gpu: geometry is missing an attribute")

	// ErrIndexRange is returned when a geometry index refers past
	// the end of its own vertices.
	ErrIndexRange = errors.New("gpu: geometry index out of range")
)

// Geometry is a chunk of indexed triangle data, with one flat float
// array per named attribute.
type Geometry struct {

	// Indices are triangle vertex indices, local to this geometry.
	Indices []uint32

	// Attributes maps attribute names (see [AttrPosition] etc)
	// to per-vertex data.
	Attributes map[string][]float32
}

// bufferAttribute is the CPU-side array and the GPU buffer of one attribute.
type bufferAttribute struct {
	Attribute
	data   []float32
	buffer BufferID
}

// GeometryBuffer accumulates [Geometry] into one set of attribute
// arrays plus one index array, then uploads and draws it with a single
// draw call. It is cleared and refilled every frame.
type GeometryBuffer struct {
	ctx         Context
	attributes  []*bufferAttribute
	indices     []uint32
	indexBuffer BufferID
	vertexCount int

	// uploaded is the number of indices in the GPU index buffer.
	uploaded int
}

// NewGeometryBuffer returns an empty buffer with the given attributes.
// GPU buffers are created on the first [GeometryBuffer.Upload].
func NewGeometryBuffer(ctx Context, attrs ...Attribute) *GeometryBuffer {
	gb := &GeometryBuffer{ctx: ctx}
	for _, at := range attrs {
		gb.attributes = append(gb.attributes, &bufferAttribute{Attribute: at})
	}
	return gb
}

// VertexCount returns the number of vertices accumulated so far.
func (gb *GeometryBuffer) VertexCount() int {
	return gb.vertexCount
}

// IndexCount returns the number of indices accumulated so far.
func (gb *GeometryBuffer) IndexCount() int {
	return len(gb.indices)
}

// Indices returns the accumulated indices. The slice must not be modified.
func (gb *GeometryBuffer) Indices() []uint32 {
	return gb.indices
}

// Attribute returns the accumulated data of the named attribute,
// or nil if the buffer has no such attribute.
func (gb *GeometryBuffer) Attribute(name string) []float32 {
	for _, at := range gb.attributes {
		if at.Name == name {
			return at.data
		}
	}
	return nil
}

// Clear empties the CPU-side arrays, keeping their storage.
// The GPU buffers keep their contents until the next upload.
func (gb *GeometryBuffer) Clear() {
	for _, at := range gb.attributes {
		at.data = at.data[:0]
	}
	gb.indices = gb.indices[:0]
	gb.vertexCount = 0
}

// AddGeometry appends g, offsetting its indices by the current vertex
// count. The geometry is validated first and the buffer is left
// untouched when it is rejected: every declared attribute must be
// present, all must describe the same number of vertices, and every
// index must refer to one of them.
func (gb *GeometryBuffer) AddGeometry(g Geometry) error {
	n, err := gb.vertices(g)
	if err != nil {
		return err
	}
	for _, ix := range g.Indices {
		if int(ix) >= n {
			return fmt.Errorf("%w: index %d with %d vertices", ErrIndexRange, ix, n)
		}
	}

	for _, at := range gb.attributes {
		at.data = append(at.data, g.Attributes[at.Name]...)
	}
	base := uint32(gb.vertexCount)
	for _, ix := range g.Indices {
		gb.indices = append(gb.indices, ix+base)
	}
	gb.vertexCount += n
	return nil
}

// vertices returns the vertex count of g as seen through the declared
// attributes, or an error if they disagree.
func (gb *GeometryBuffer) vertices(g Geometry) (int, error) {
	n := -1
	for _, at := range gb.attributes {
		data, ok := g.Attributes[at.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingAttribute, at.Name)
		}
		if len(data)%at.Channels != 0 {
			return 0, fmt.Errorf("%w: %q has %d floats for %d channels", ErrShapeMismatch, at.Name, len(data), at.Channels)
		}
		c := len(data) / at.Channels
		if n >= 0 && c != n {
			return 0, fmt.Errorf("%w: %q has %d vertices, expected %d", ErrShapeMismatch, at.Name, c, n)
		}
		n = c
	}
	return max(n, 0), nil
}

// Upload transfers the accumulated arrays to the GPU.
func (gb *GeometryBuffer) Upload() {
	if gb.indexBuffer.IsNil() {
		gb.indexBuffer = gb.ctx.CreateBuffer()
		for _, at := range gb.attributes {
			at.buffer = gb.ctx.CreateBuffer()
		}
	}
	for _, at := range gb.attributes {
		gb.ctx.BindBuffer(ArrayBuffer, at.buffer)
		gb.ctx.BufferDataFloat32(ArrayBuffer, at.data, DynamicDraw)
	}
	gb.ctx.BindBuffer(ElementArrayBuffer, gb.indexBuffer)
	gb.ctx.BufferDataUint32(ElementArrayBuffer, gb.indices, DynamicDraw)
	gb.uploaded = len(gb.indices)
}

// Draw binds the attributes to the current program and draws the
// uploaded triangles. It does nothing when no indices were uploaded.
func (gb *GeometryBuffer) Draw() {
	if gb.uploaded == 0 {
		return
	}
	for _, at := range gb.attributes {
		if at.Location < 0 {
			continue
		}
		gb.ctx.BindBuffer(ArrayBuffer, at.buffer)
		gb.ctx.VertexAttribPointer(at.Location, at.Channels, Float, false, 0, 0)
		gb.ctx.EnableVertexAttribArray(at.Location)
	}
	gb.ctx.BindBuffer(ElementArrayBuffer, gb.indexBuffer)
	gb.ctx.DrawElements(Triangles, gb.uploaded, UnsignedInt, 0)
}

// Release deletes the GPU buffers.
func (gb *GeometryBuffer) Release() {
	if gb.indexBuffer.IsNil() {
		return
	}
	for _, at := range gb.attributes {
		gb.ctx.DeleteBuffer(at.buffer)
		at.buffer = BufferID{}
	}
	gb.ctx.DeleteBuffer(gb.indexBuffer)
	gb.indexBuffer = BufferID{}
	gb.uploaded = 0
}
