// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates the vertex data of the primitives drawn by
// the grapher: spheres, screen-space lines, meshes and quads.
// Every generator returns a [gpu.Geometry] ready for
// [gpu.GeometryBuffer.AddGeometry].
package shape

import "cogentcore.org/grapher3d/gpu"

// Fill returns n copies of v laid end to end.
func Fill(v []float32, n int) []float32 {
	out := make([]float32, 0, len(v)*n)
	for range n {
		out = append(out, v...)
	}
	return out
}

// Group concatenates geometries into one, offsetting indices as it
// goes. The members must come from the same generator family so that
// they share the same attribute names.
func Group(geoms ...gpu.Geometry) gpu.Geometry {
	out := gpu.Geometry{Attributes: map[string][]float32{}}
	vertexOffset := uint32(0)
	for _, g := range geoms {
		for name, data := range g.Attributes {
			out.Attributes[name] = append(out.Attributes[name], data...)
		}
		for _, ix := range g.Indices {
			out.Indices = append(out.Indices, ix+vertexOffset)
		}
		vertexOffset += uint32(vertexCount(g))
	}
	return out
}

// vertexCount returns the vertex count of g from its position attribute.
func vertexCount(g gpu.Geometry) int {
	return len(g.Attributes[gpu.AttrPosition]) / 3
}
