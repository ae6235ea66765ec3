// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/grapher3d/gpu"

// Lines expands line segments into screen-space quads for the lines
// program. position has 3 floats per point, color 4 and width 1;
// indices lists pairs of points, one pair per segment.
//
// Each segment becomes 4 vertices (the first endpoint twice, then the
// second endpoint twice) and 2 triangles. The tangent of each vertex is
// the other endpoint, which the vertex shader uses to find the
// screen-space direction of the segment, and the offsets are plus and
// minus half the width at that endpoint, in pixels.
// A trailing unpaired index is ignored.
func Lines(position, color, width []float32, indices []uint32) gpu.Geometry {
	n := len(indices) / 2
	out := struct {
		pos, col, tan, off []float32
		idx                []uint32
	}{
		pos: make([]float32, 0, n*12),
		col: make([]float32, 0, n*16),
		tan: make([]float32, 0, n*12),
		off: make([]float32, 0, n*4),
		idx: make([]uint32, 0, n*6),
	}
	for s := range n {
		i0, i1 := indices[2*s], indices[2*s+1]
		a := position[i0*3 : i0*3+3]
		b := position[i1*3 : i1*3+3]
		ca := color[i0*4 : i0*4+4]
		cb := color[i1*4 : i1*4+4]

		out.pos = append(append(append(append(out.pos, a...), a...), b...), b...)
		out.tan = append(append(append(append(out.tan, b...), b...), a...), a...)
		out.col = append(append(append(append(out.col, ca...), ca...), cb...), cb...)
		out.off = append(out.off, 0.5*width[i0], -0.5*width[i0], 0.5*width[i1], -0.5*width[i1])

		v := uint32(4 * s)
		out.idx = append(out.idx, v, v+1, v+2, v+2, v+3, v)
	}
	return gpu.Geometry{
		Indices: out.idx,
		Attributes: map[string][]float32{
			gpu.AttrPosition: out.pos,
			gpu.AttrColor:    out.col,
			gpu.AttrTangent:  out.tan,
			gpu.AttrOffset:   out.off,
		},
	}
}

// Polyline returns the [Lines] geometry of a curve through points
// (3 floats each), joining each point to the next, with uniform color
// and width.
func Polyline(points []float32, color [4]float32, width float32) gpu.Geometry {
	np := len(points) / 3
	var indices []uint32
	for i := 1; i < np; i++ {
		indices = append(indices, uint32(i-1), uint32(i))
	}
	return Lines(points[:np*3], Fill(color[:], np), Fill([]float32{width}, np), indices)
}

// Segments returns the [Lines] geometry of independent segments, where
// points holds two endpoints (6 floats) per segment.
func Segments(points []float32, color [4]float32, width float32) gpu.Geometry {
	np := len(points) / 6 * 2
	indices := make([]uint32, np)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return Lines(points[:np*3], Fill(color[:], np), Fill([]float32{width}, np), indices)
}
