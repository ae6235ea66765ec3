// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"

	"cogentcore.org/grapher3d/base/errors"
	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/gpu/shape"
	"cogentcore.org/grapher3d/logx"
	"cogentcore.org/grapher3d/plane"
	"golang.org/x/image/draw"
)

// gridState is everything the grid geometry depends on.
type gridState struct {
	viewport                     plane.Viewport
	axisOpacity, major, minor    float64
	showBox, showAxes, showPlane bool
}

// GridLayer draws the axes, the viewport box and the base plane,
// which is the 2D graph rendered as a texture at z = 0.
type GridLayer struct {
	surface *Surface
	cfg     config.Rendering

	lines   *gpu.GeometryBuffer
	plane   *gpu.GeometryBuffer
	texture *gpu.ImageTexture

	cached gridState
	built  bool

	// Rebuilds counts line geometry rebuilds.
	Rebuilds int
}

// NewGridLayer returns a grid layer drawing on sf.
func NewGridLayer(sf *Surface, cfg config.Rendering) *GridLayer {
	return &GridLayer{surface: sf, cfg: cfg}
}

func (gl *GridLayer) state(proj plane.Projection) gridState {
	st := gridState{
		viewport:  proj.Viewport,
		showBox:   gl.surface.IsShowBox(),
		showAxes:  gl.surface.IsShowAxes(),
		showPlane: gl.surface.IsShowPlane(),
	}
	if s := proj.Settings; s != nil {
		st.axisOpacity, st.major, st.minor = s.AxisOpacity, s.MajorAxisOpacity, s.MinorAxisOpacity
	}
	return st
}

// Redraw draws the grid for proj, rebuilding the line geometry only
// when the viewport, the opacities or the show flags changed.
func (gl *GridLayer) Redraw(proj plane.Projection) {
	progs := gl.surface.Programs
	if progs.Lines != nil {
		if gl.lines == nil {
			gl.lines = progs.Lines.NewGeometryBuffer()
		}
		st := gl.state(proj)
		if !gl.built || st != gl.cached {
			gl.cached = st
			gl.built = true
			gl.rebuild(st)
			gl.updatePlaneQuad(st.viewport)
		}
		gl.surface.SetProgram(progs.Lines, nil)
		gl.lines.Draw()
	}
	if gl.texture != nil && gl.plane != nil && gl.surface.IsShowPlane() && gl.surface.SetProgram(progs.Textured, gl.texture) {
		gl.plane.Draw()
	}
}

func (gl *GridLayer) rebuild(st gridState) {
	gl.Rebuilds++
	gl.lines.Clear()
	var parts []gpu.Geometry
	if st.showAxes {
		parts = append(parts, gl.axes(st))
	}
	if st.showBox {
		parts = append(parts, gl.box(st))
	}
	if len(parts) > 0 {
		errors.Log(gl.lines.AddGeometry(shape.Group(parts...)))
	}
	gl.lines.Upload()
}

// axes returns the three axis lines and their arrow tips. A tip is a
// short segment whose width narrows to zero.
func (gl *GridLayer) axes(st gridState) gpu.Geometry {
	vp := st.viewport
	xmin, xmax := float32(vp.Xmin), float32(vp.Xmax)
	ymin, ymax := float32(vp.Ymin), float32(vp.Ymax)
	zmin, zmax := float32(vp.Zmin), float32(vp.Zmax)
	tip := gl.cfg.ArrowLength
	position := []float32{
		xmin, 0, 0, xmax, 0, 0, 0, ymin, 0, 0, ymax, 0, 0, 0, zmin, 0, 0, zmax,
		xmax, 0, 0, xmax + tip, 0, 0, 0, ymax, 0, 0, ymax + tip, 0, 0, 0, zmax, 0, 0, zmax + tip,
	}
	aw, tw := gl.cfg.AxisWidth, gl.cfg.ArrowWidth
	width := []float32{aw, aw, aw, aw, aw, aw, tw, 0, tw, 0, tw, 0}
	color := shape.Fill([]float32{0, 0, 0, float32(st.axisOpacity)}, 12)
	indices := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	return shape.Lines(position, color, width, indices)
}

// box returns the 12 edges of the viewport box.
func (gl *GridLayer) box(st gridState) gpu.Geometry {
	vp := st.viewport
	x := [2]float32{float32(vp.Xmin), float32(vp.Xmax)}
	y := [2]float32{float32(vp.Ymin), float32(vp.Ymax)}
	z := [2]float32{float32(vp.Zmin), float32(vp.Zmax)}
	var pts []float32
	for i := range 2 {
		for j := range 2 {
			pts = append(pts,
				x[0], y[i], z[j], x[1], y[i], z[j],
				x[i], y[0], z[j], x[i], y[1], z[j],
				x[i], y[j], z[0], x[i], y[j], z[1],
			)
		}
	}
	return shape.Segments(pts, [4]float32{0, 0, 0, float32(st.major)}, gl.cfg.AxisWidth/2)
}

// UpdatePlaneMap uploads img, a raster of the 2D graph, as the base
// plane texture, scaled to the baseplane width, and spans it over the
// x-y extent of vp.
func (gl *GridLayer) UpdatePlaneMap(img image.Image, vp plane.Viewport) {
	if gl.surface.Programs.Textured == nil {
		return
	}
	rgba := gl.planeImage(img)
	if rgba == nil {
		logx.Logger().Warn("xyz.GridLayer.UpdatePlaneMap: empty image")
		return
	}
	if gl.texture == nil {
		gl.texture = gpu.NewImageTexture(gl.surface.Context())
	}
	gl.texture.SetImage(rgba)
	gl.updatePlaneQuad(vp)
}

func (gl *GridLayer) updatePlaneQuad(vp plane.Viewport) {
	if gl.texture == nil {
		return
	}
	if gl.plane == nil {
		gl.plane = gl.surface.Programs.Textured.NewGeometryBuffer()
	} else {
		gl.plane.Clear()
	}
	errors.Log(gl.plane.AddGeometry(shape.TexturedQuad(float32(vp.Xmin), float32(vp.Xmax), float32(vp.Ymin), float32(vp.Ymax), 0)))
	gl.plane.Upload()
}

// planeImage converts img to RGBA at the baseplane width, keeping the
// aspect ratio.
func (gl *GridLayer) planeImage(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	sz := img.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil
	}
	w := gl.cfg.BaseplaneWidth
	if rgba, ok := img.(*image.RGBA); ok && sz.X == w && img.Bounds().Min == (image.Point{}) {
		return rgba
	}
	h := max(1, sz.Y*w/sz.X)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Release deletes the GPU resources of the layer.
func (gl *GridLayer) Release() {
	for _, b := range []*gpu.GeometryBuffer{gl.lines, gl.plane} {
		if b != nil {
			b.Release()
		}
	}
	if gl.texture != nil {
		gl.texture.Release()
	}
}
