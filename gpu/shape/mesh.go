// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/grapher3d/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh returns triangle geometry for the triangles program with a
// uniform color. When normals is nil, flat face normals are computed
// and each face gets its own three vertices; faces referring past the
// positions are then dropped.
func Mesh(positions, normals []float32, faces []uint32, color [3]float32) gpu.Geometry {
	if normals == nil {
		return flatMesh(positions, faces, color)
	}
	nv := len(positions) / 3
	return gpu.Geometry{
		Indices: faces,
		Attributes: map[string][]float32{
			gpu.AttrPosition: positions,
			gpu.AttrColor:    Fill(color[:], nv),
			gpu.AttrNormal:   normals,
		},
	}
}

func flatMesh(positions []float32, faces []uint32, color [3]float32) gpu.Geometry {
	nt := len(faces) / 3
	nv := uint32(len(positions) / 3)
	pos := make([]float32, 0, nt*9)
	norm := make([]float32, 0, nt*9)
	idx := make([]uint32, 0, nt*3)
	vertex := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
	}
	for t := range nt {
		f := faces[3*t : 3*t+3]
		if f[0] >= nv || f[1] >= nv || f[2] >= nv {
			continue
		}
		a, b, c := vertex(f[0]), vertex(f[1]), vertex(f[2])
		n := b.Sub(a).Cross(c.Sub(a))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		for _, p := range []mgl32.Vec3{a, b, c} {
			pos = append(pos, p[:]...)
			norm = append(norm, n[:]...)
		}
		v := uint32(len(idx))
		idx = append(idx, v, v+1, v+2)
	}
	return gpu.Geometry{
		Indices: idx,
		Attributes: map[string][]float32{
			gpu.AttrPosition: pos,
			gpu.AttrColor:    Fill(color[:], len(idx)),
			gpu.AttrNormal:   norm,
		},
	}
}

// TexturedQuad returns the rectangle [xmin, xmax] x [ymin, ymax] at
// height z for the textured program. The top row of the texture maps
// onto ymax.
func TexturedQuad(xmin, xmax, ymin, ymax, z float32) gpu.Geometry {
	return gpu.Geometry{
		Indices: []uint32{0, 1, 2, 2, 3, 0},
		Attributes: map[string][]float32{
			gpu.AttrPosition: {xmin, ymin, z, xmax, ymin, z, xmax, ymax, z, xmin, ymax, z},
			gpu.AttrTexCoord: {0, 1, 1, 1, 1, 0, 0, 0},
		},
	}
}
