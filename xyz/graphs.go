// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/grapher3d/colors"
	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/gpu/shape"
	"cogentcore.org/grapher3d/logx"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPointRadius is the radius of points that do not set one.
const DefaultPointRadius = 0.15

// GraphsLayer draws the sketches. All triangles of a frame go into one
// buffer and all lines into another, so a frame is two draw calls no
// matter how many sketches there are.
type GraphsLayer struct {
	surface   *Surface
	cfg       config.Rendering
	triangles *gpu.GeometryBuffer
	lines     *gpu.GeometryBuffer
}

// NewGraphsLayer returns a graphs layer drawing on sf.
func NewGraphsLayer(sf *Surface, cfg config.Rendering) *GraphsLayer {
	return &GraphsLayer{surface: sf, cfg: cfg}
}

// Triangles returns the triangle buffer of the last frame.
func (gl *GraphsLayer) Triangles() *gpu.GeometryBuffer { return gl.triangles }

// Lines returns the line buffer of the last frame.
func (gl *GraphsLayer) Lines() *gpu.GeometryBuffer { return gl.lines }

// Redraw draws the sketches named by order. Ids with no sketch are
// skipped.
func (gl *GraphsLayer) Redraw(sketches map[string]*Sketch, order []string) {
	progs := gl.surface.Programs
	if gl.triangles == nil && progs.Triangles != nil {
		gl.triangles = progs.Triangles.NewGeometryBuffer()
	}
	if gl.lines == nil && progs.Lines != nil {
		gl.lines = progs.Lines.NewGeometryBuffer()
	}
	for _, b := range []*gpu.GeometryBuffer{gl.triangles, gl.lines} {
		if b != nil {
			b.Clear()
		}
	}
	for _, id := range order {
		if sk := sketches[id]; sk != nil {
			gl.addSketch(sk)
		}
	}
	if gl.triangles != nil {
		gl.triangles.Upload()
		if gl.surface.SetProgram(progs.Triangles, nil) {
			gl.triangles.Draw()
		}
	}
	if gl.lines != nil {
		gl.lines.Upload()
		if gl.surface.SetProgram(progs.Lines, nil) {
			gl.lines.Draw()
		}
	}
}

func (gl *GraphsLayer) addSketch(sk *Sketch) {
	for i, br := range sk.Branches {
		if err := gl.addBranch(br); err != nil {
			logx.Logger().Warn("xyz.GraphsLayer: skipping branch", slog.String("sketch", sk.ID), slog.Int("branch", i), slog.Any("err", err))
		}
	}
}

// add appends g to b, which is nil when its program failed to build.
func add(b *gpu.GeometryBuffer, g gpu.Geometry) error {
	if b == nil {
		return nil
	}
	return b.AddGeometry(g)
}

func (gl *GraphsLayer) addBranch(br Branch) error {
	color := colors.RGB(br.AsBranchBase().Color)
	opaque := [4]float32{color[0], color[1], color[2], 1}
	switch br := br.(type) {
	case *Curve:
		return add(gl.lines, shape.Polyline(br.Points, opaque, gl.curveWidth(br.Thickness)))
	case *Segment:
		if err := add(gl.lines, shape.Polyline(br.Points, opaque, gl.curveWidth(br.Thickness))); err != nil {
			return err
		}
		if !br.Vector {
			return nil
		}
		if tip, ok := gl.arrowTip(br.Points, opaque); ok {
			return add(gl.lines, tip)
		}
	case *SurfaceMesh:
		return add(gl.triangles, shape.Mesh(br.Mesh.Positions, br.Mesh.Normals, br.Mesh.Faces, color))
	case *Triangle:
		return add(gl.triangles, shape.Mesh(br.Mesh.Positions, br.Mesh.Normals, br.Mesh.Faces, color))
	case *Sphere:
		return gl.addSphere(br.Center, br.Radius, color)
	case *Point:
		r := br.Radius
		if r <= 0 {
			r = DefaultPointRadius
		}
		return gl.addSphere(br.Center, r, color)
	case *Unsupported:
	}
	return nil
}

func (gl *GraphsLayer) addSphere(center mgl32.Vec3, radius float32, color [3]float32) error {
	g, err := shape.Sphere(center, radius, color, gl.cfg.SphereLatitudes, gl.cfg.SphereLongitudes)
	if err != nil {
		return err
	}
	return add(gl.triangles, g)
}

func (gl *GraphsLayer) curveWidth(thickness float64) float32 {
	return float32(thickness * gl.cfg.CurveWidthScale)
}

// arrowTip returns a tapered segment continuing the last segment of
// points, like the axis arrows. It returns false when the last segment
// has no direction.
func (gl *GraphsLayer) arrowTip(points []float32, color [4]float32) (gpu.Geometry, bool) {
	n := len(points) / 3
	if n < 2 {
		return gpu.Geometry{}, false
	}
	vec := func(i int) mgl32.Vec3 { return mgl32.Vec3{points[3*i], points[3*i+1], points[3*i+2]} }
	end := vec(n - 1)
	dir := end.Sub(vec(n - 2))
	if dir.Len() == 0 {
		return gpu.Geometry{}, false
	}
	tip := end.Add(dir.Normalize().Mul(gl.cfg.ArrowLength))
	return shape.Lines(
		[]float32{end[0], end[1], end[2], tip[0], tip[1], tip[2]},
		shape.Fill(color[:], 2),
		[]float32{gl.cfg.ArrowWidth, 0},
		[]uint32{0, 1},
	), true
}

// Release deletes the GPU buffers of the layer.
func (gl *GraphsLayer) Release() {
	for _, b := range []*gpu.GeometryBuffer{gl.triangles, gl.lines} {
		if b != nil {
			b.Release()
		}
	}
}
