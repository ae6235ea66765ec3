// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/gpu/gpufake"
	"cogentcore.org/grapher3d/plane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRebuildsOnlyWhenChanged(t *testing.T) {
	env := newTestEnv(t)
	g := env.g
	lines := programID(t, env, "lines")

	g.RedrawAllLayersSynchronously()
	assert.Equal(t, 1, g.grid.Rebuilds)
	assert.Equal(t, []int{108}, drawCounts(env, lines), "6 axis and 12 box segments")
	assert.Equal(t, 72, g.grid.lines.VertexCount())
	assert.Equal(t, uint32(24), g.grid.lines.Indices()[36], "box follows the axis vertices")

	g.RedrawAllLayers()
	g.Tick()
	assert.Equal(t, 1, g.grid.Rebuilds)

	g.SetGrapherState(plane.State{"majorAxisOpacity": 0.2}, StateOptions{})
	g.Tick()
	assert.Equal(t, 2, g.grid.Rebuilds)

	env.ctx.Reset()
	g.SetGrapherState(plane.State{"showBox3D": false}, StateOptions{})
	g.Tick()
	assert.Equal(t, 3, g.grid.Rebuilds)
	assert.Equal(t, []int{36}, drawCounts(env, lines))

	g.Controls().SetViewport(plane.Viewport{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1, Zmin: -1, Zmax: 1})
	g.Tick()
	assert.Equal(t, 4, g.grid.Rebuilds)
}

func TestGridAxesGeometry(t *testing.T) {
	env := newTestEnv(t)
	st := env.g.grid.state(env.g.Projection())
	geom := env.g.grid.axes(st)
	pos := geom.Attributes[gpu.AttrPosition]
	// the x arrow tip starts at xmax and ends ArrowLength beyond it
	tip := 3 * 4 * 3
	assert.Equal(t, []float32{10, 0, 0}, pos[tip:tip+3])
	assert.Equal(t, []float32{10.25, 0, 0}, pos[tip+6:tip+9])
	off := geom.Attributes[gpu.AttrOffset]
	assert.Equal(t, []float32{1, -1, 1, -1}, off[:4])
	assert.Equal(t, []float32{10, -10, 0, 0}, off[12:16])
	assert.Equal(t, float32(0.9), geom.Attributes[gpu.AttrColor][3])
}

func TestUpdatePlaneMap(t *testing.T) {
	env := newTestEnv(t)
	g := env.g
	assert.Equal(t, 768, g.BaseplaneWidth())
	g.UpdatePlaneMap(image.NewRGBA(image.Rect(0, 0, 100, 50)))

	tex := g.grid.texture
	require.NotNil(t, tex)
	assert.Equal(t, image.Point{768, 384}, env.ctx.Textures[gpufake.ID(tex.ID.Object)])
	assert.Equal(t, 1, env.ctx.Mipmaps)
	assert.True(t, tex.Mipmapped)
	assert.Equal(t, gpu.LinearMipmapLinear, env.ctx.TexParams[gpu.TextureMinFilter])

	g.Tick()
	textured := drawCounts(env, programID(t, env, "textured"))
	assert.Equal(t, []int{6}, textured)
	quad := g.grid.plane.Attribute(gpu.AttrPosition)
	assert.Equal(t, []float32{-10, -10, 0}, quad[:3])

	env.ctx.Reset()
	g.SetGrapherState(plane.State{"showPlane3D": false}, StateOptions{})
	g.Tick()
	assert.Empty(t, drawCounts(env, programID(t, env, "textured")))
}

func TestUpdatePlaneMapLegacyNPOT(t *testing.T) {
	env := newTestEnvWith(t, gpufake.NewLegacyContext())
	assert.True(t, env.g.Surface().LegacyMode())
	env.g.UpdatePlaneMap(image.NewRGBA(image.Rect(0, 0, 768, 512)))
	assert.Zero(t, env.ctx.Mipmaps)
	assert.Equal(t, gpu.ClampToEdge, env.ctx.TexParams[gpu.TextureWrapS])
	assert.Equal(t, gpu.ClampToEdge, env.ctx.TexParams[gpu.TextureWrapT])
	assert.Equal(t, gpu.Linear, env.ctx.TexParams[gpu.TextureMinFilter])
}

func TestUpdatePlaneMapEmptyImage(t *testing.T) {
	env := newTestEnv(t)
	env.g.UpdatePlaneMap(image.NewRGBA(image.Rectangle{}))
	assert.Nil(t, env.g.grid.texture)
}

func TestSurfaceBackgroundCached(t *testing.T) {
	env := newTestEnv(t)
	sf := env.g.Surface()
	env.host.redraws = 0
	sf.SetBackgroundColor("#ffffff")
	assert.Zero(t, env.host.redraws)

	sf.SetBackgroundColor("#000")
	assert.Equal(t, 1, env.host.redraws)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, env.ctx.ClearColorValue)
	sf.SetBackgroundColor("#000")
	assert.Equal(t, 1, env.host.redraws)

	sf.SetBackgroundColor("")
	assert.Equal(t, "#ffffff", sf.BackgroundColor())
}

func TestSurfaceSetProgram(t *testing.T) {
	env := newTestEnv(t)
	env.g.Update()
	sf := env.g.Surface()
	assert.False(t, sf.SetProgram(nil, nil))

	pr := sf.Programs.Lines
	require.True(t, sf.SetProgram(pr, nil))
	id := gpufake.ID(pr.ID.Object)
	assert.Equal(t, [2]float32{800, 600}, env.ctx.Uniform(id, gpu.UniformResolution))
	assert.Equal(t, [16]float32(env.g.Controls().Orientation.Projection()), env.ctx.Uniform(id, gpu.UniformProjection))
}

func TestFailedProgramsDoNotPanic(t *testing.T) {
	ctx := gpufake.NewContext()
	ctx.FailLink = true
	env := newTestEnvWith(t, ctx)
	assert.Empty(t, env.g.Surface().Programs.All())

	env.g.UpdateSketch("s", []Branch{NewBranch(ModeSphere, BranchData{Radius: 1})})
	env.g.SetSketchOrder([]string{"s"})
	assert.NotPanics(t, func() {
		env.g.RedrawAllLayersSynchronously()
		env.g.UpdatePlaneMap(image.NewRGBA(image.Rect(0, 0, 10, 10)))
		env.g.Remove()
	})
	assert.Empty(t, env.ctx.Draws)
}

func TestFailedFragmentShader(t *testing.T) {
	ctx := gpufake.NewContext()
	ctx.FailCompile = gpu.FragmentShader
	env := newTestEnvWith(t, ctx)
	assert.Empty(t, env.g.Surface().Programs.All())
	assert.NotPanics(t, env.g.RedrawAllLayersSynchronously)
}
