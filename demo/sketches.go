// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo has sample sketches and a render loop clock shared by
// the grapher3d commands.
package demo

import (
	"cogentcore.org/grapher3d/math32"
	"cogentcore.org/grapher3d/xyz"
	"github.com/go-gl/mathgl/mgl32"
)

// Helix returns n points of a helix of the given radius climbing
// pitch per turn, starting at z = -turns*pitch/2.
func Helix(n int, radius, turns, pitch float32) []float32 {
	pts := make([]float32, 0, 3*n)
	for i := range n {
		t := float32(i) / float32(max(n-1, 1))
		a := 2 * math32.Pi * turns * t
		pts = append(pts, radius*math32.Cos(a), radius*math32.Sin(a), pitch*turns*(t-0.5))
	}
	return pts
}

// Ripple returns the surface z = amplitude·sin(r)/r over the square
// [-extent, extent]², sampled on an n×n grid, with two triangles per
// grid cell. Normals are left out so the surface is flat shaded.
func Ripple(n int, extent, amplitude float32) xyz.MeshData {
	var m xyz.MeshData
	step := 2 * extent / float32(n-1)
	for j := range n {
		for i := range n {
			x, y := -extent+float32(i)*step, -extent+float32(j)*step
			r := math32.Sqrt(x*x + y*y)
			z := amplitude
			if r > 0 {
				z = amplitude * math32.Sin(r) / r
			}
			m.Positions = append(m.Positions, x, y, z)
			m.UVs = append(m.UVs, float32(i)/float32(n-1), float32(j)/float32(n-1))
		}
	}
	for j := range n - 1 {
		for i := range n - 1 {
			a := uint32(j*n + i)
			b, c, d := a+1, a+uint32(n), a+uint32(n)+1
			m.Faces = append(m.Faces, a, b, d, d, c, a)
		}
	}
	return m
}

// Load adds the demo sketches to g and draws them in a fixed order.
func Load(g *xyz.Grapher) {
	g.UpdateSketch("ripple", []xyz.Branch{
		xyz.NewBranch(xyz.ModeSurfaceZBased, xyz.BranchData{Color: "#2d70b3", Mesh: Ripple(48, 9, 6)}),
	})
	g.UpdateSketch("helix", []xyz.Branch{
		xyz.NewBranch(xyz.ModeCurveParametric, xyz.BranchData{Color: "#c74440", Points: Helix(400, 6, 4, 3), Thickness: 1}),
	})
	g.UpdateSketch("sphere", []xyz.Branch{
		xyz.NewBranch(xyz.ModeSphere, xyz.BranchData{Color: "#fa7e19", Position: mgl32.Vec3{0, 0, 7}, Radius: 1.5}),
	})
	g.UpdateSketch("points", []xyz.Branch{
		xyz.NewBranch(xyz.ModePoint, xyz.BranchData{Color: "#388c46", Position: mgl32.Vec3{6, 0, -6}}),
		xyz.NewBranch(xyz.ModePoint, xyz.BranchData{Color: "#388c46", Position: mgl32.Vec3{-6, 0, 6}}),
	})
	g.UpdateSketch("vector", []xyz.Branch{
		xyz.NewBranch(xyz.ModeVector, xyz.BranchData{Color: "#6042a6", Points: []float32{0, 0, 0, 5, 5, 5}, Thickness: 1}),
	})
	g.SetSketchOrder([]string{"ripple", "helix", "sphere", "points", "vector"})
}
