// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/gpu/gpufake"
	"cogentcore.org/grapher3d/plane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrapherErrors(t *testing.T) {
	_, err := NewGrapher(Options{Context: gpufake.NewContext()})
	assert.ErrorIs(t, err, ErrNoHost)

	_, err = NewGrapher(Options{Context: gpufake.NewContext(), Host: &fakeHost{}})
	assert.ErrorIs(t, err, ErrNoClock)

	_, err = NewGrapher(Options{Host: &fakeHost{}, Clock: newFakeClock()})
	assert.ErrorIs(t, err, gpu.ErrNoContext)
}

func TestNewGrapherGLState(t *testing.T) {
	env := newTestEnv(t)
	assert.True(t, env.ctx.IsEnabled(gpu.Blend))
	assert.True(t, env.ctx.IsEnabled(gpu.DepthTest))
	assert.Equal(t, [2]gpu.Enum{gpu.SrcAlpha, gpu.OneMinusSrcAlpha}, env.ctx.BlendValue)
	assert.Equal(t, gpu.Lequal, env.ctx.DepthFuncValue)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, env.ctx.ClearColorValue)
	assert.Len(t, env.g.Surface().Programs.All(), 3)
	assert.False(t, env.g.Surface().LegacyMode())
}

func TestResizeIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.host.redraws = 0
	env.g.Resize(300, 200, 2)
	env.g.Resize(300, 200, 2)
	assert.Equal(t, 1, env.host.redraws)

	w, h, r := env.g.Surface().Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
	assert.Equal(t, 2.0, r)
	assert.Equal(t, [4]int{0, 0, 600, 400}, env.ctx.ViewportValue)
	assert.Equal(t, plane.Screen{Width: 300, Height: 200}, env.g.Projection().Screen)
}

func TestVisibility(t *testing.T) {
	env := newTestEnv(t)
	env.g.Update()
	assert.True(t, env.g.IsVisible())
	env.g.RedrawAllLayersSynchronously()
	assert.False(t, env.g.NeedsRedraw())

	env.host.layout = plane.Screen{}
	env.g.Update()
	assert.False(t, env.g.IsVisible())
	w, h, _ := env.g.Surface().Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	env.ctx.Draws = nil
	env.g.AddGraphSketch(NewSketch("s", []Branch{NewBranch(ModeSphere, BranchData{Radius: 1})}))
	env.g.SetSketchOrder([]string{"s"})
	env.g.Tick()
	assert.Empty(t, env.ctx.Draws)
	assert.True(t, env.g.NeedsRedraw())

	env.host.layout = plane.Screen{Width: 640, Height: 480}
	env.g.Tick()
	assert.True(t, env.g.IsVisible())
	assert.False(t, env.g.NeedsRedraw())
	assert.NotEmpty(t, env.ctx.Draws)
}

func TestTickWithoutRequestDrawsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.g.RedrawAllLayersSynchronously()
	env.ctx.Draws = nil
	env.g.Tick()
	assert.Empty(t, env.ctx.Draws)

	env.g.RedrawAllLayers()
	env.g.RedrawAllLayers()
	env.g.Tick()
	env.g.Tick()
	assert.Len(t, env.ctx.Draws, 1, "grid lines only")
}

func TestSphereEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.g.UpdateSketch("s", []Branch{NewBranch(ModeSphere, BranchData{Radius: 1, Color: "#ff0000"})})
	env.g.SetSketchOrder([]string{"s"})
	env.g.RedrawAllLayersSynchronously()

	tri := env.g.graphs.Triangles()
	assert.Equal(t, 382, tri.VertexCount())
	assert.Equal(t, []int{2280}, drawCounts(env, programID(t, env, "triangles")))
	assert.Equal(t, []float32{1, 0, 0}, tri.Attribute(gpu.AttrColor)[:3])

	// camera and light reach the program
	prog := programID(t, env, "triangles")
	assert.Equal(t, [16]float32(env.g.Controls().Orientation.ModelView()), env.ctx.Uniform(prog, gpu.UniformModelView))
	assert.Equal(t, float32(0.4), env.ctx.Uniform(prog, gpu.UniformAmbientLight))
}

func TestSketchOrderControlsDrawing(t *testing.T) {
	env := newTestEnv(t)
	env.g.UpdateSketch("a", []Branch{NewBranch(ModePoint, BranchData{})})
	env.g.UpdateSketch("b", []Branch{NewBranch(ModeSphere, BranchData{Radius: 2})})
	env.g.SetSketchOrder([]string{"b", "missing"})
	env.g.RedrawAllLayersSynchronously()
	assert.Equal(t, 382, env.g.graphs.Triangles().VertexCount())

	env.g.SetSketchOrder([]string{"a", "b"})
	env.g.RedrawAllLayersSynchronously()
	assert.Equal(t, 2*382, env.g.graphs.Triangles().VertexCount())
	assert.Equal(t, []string{"a", "b"}, env.g.Sketches())

	order := []string{"a", "b"}
	env.host.redraws = 0
	env.g.SetSketchOrder(order)
	assert.Zero(t, env.host.redraws)
	order[0] = "x"
	assert.Equal(t, []string{"a", "b"}, env.g.SketchOrder())
}

func TestUpdateSketch(t *testing.T) {
	env := newTestEnv(t)
	g := env.g
	env.host.selected["s"] = true
	env.host.trace = true
	g.SetActiveToken(ActiveToken{Hovered: "s"})

	g.UpdateSketch("s", []Branch{
		NewBranch(ModeCurveParametric, BranchData{Color: "#00ff00", Style: "dashed", Points: []float32{0, 0, 0, 1, 1, 1}, Thickness: 2.5}),
		NewBranch(ModeSegment, BranchData{Color: "#0000ff"}),
	})
	sk := g.GraphSketch("s")
	require.NotNil(t, sk)
	assert.Equal(t, "#00ff00", sk.Color)
	assert.Equal(t, "dashed", sk.Style)
	assert.Equal(t, SketchUI{ShowPOI: true, ShowHighlight: true, Selected: true, TokenHovered: true}, sk.UI)

	env.host.trace = false
	g.UpdateSketch("s", []Branch{NewBranch(ModeError, BranchData{Color: "#ff0000"})})
	sk = g.GraphSketch("s")
	assert.Equal(t, "#000000", sk.Color)
	assert.Equal(t, "normal", sk.Style)
	assert.False(t, sk.UI.ShowPOI)

	g.DeselectSketch("s")
	assert.False(t, g.GraphSketch("s").UI.Selected)
	g.SelectSketch("s")
	assert.True(t, g.GraphSketch("s").UI.ShowHighlight)

	g.UpdateSketch("s", nil)
	assert.Nil(t, g.GraphSketch("s"))
	assert.Empty(t, g.Sketches())
}

func TestCurveWidth(t *testing.T) {
	env := newTestEnv(t)
	env.g.UpdateSketch("c", []Branch{NewBranch(ModeCurveParametric, BranchData{Points: []float32{0, 0, 0, 1, 0, 0, 1, 1, 0}, Thickness: 2.5})})
	env.g.SetSketchOrder([]string{"c"})
	env.g.RedrawAllLayersSynchronously()
	lines := env.g.graphs.Lines()
	assert.Equal(t, 8, lines.VertexCount())
	assert.Equal(t, float32(5), lines.Attribute(gpu.AttrOffset)[0])
}

func TestVectorArrow(t *testing.T) {
	env := newTestEnv(t)
	pts := []float32{0, 0, 0, 2, 0, 0}
	env.g.UpdateSketch("v", []Branch{NewBranch(ModeVector, BranchData{Points: pts, Thickness: 1})})
	env.g.UpdateSketch("s", []Branch{NewBranch(ModeSegment, BranchData{Points: pts, Thickness: 1})})
	env.g.SetSketchOrder([]string{"s"})
	env.g.RedrawAllLayersSynchronously()
	assert.Equal(t, 4, env.g.graphs.Lines().VertexCount())

	env.g.SetSketchOrder([]string{"v"})
	env.g.RedrawAllLayersSynchronously()
	lines := env.g.graphs.Lines()
	assert.Equal(t, 8, lines.VertexCount())
	assert.Equal(t, float32(2.25), lines.Attribute(gpu.AttrPosition)[6*3])
}

func TestBadBranchSkipped(t *testing.T) {
	env := newTestEnv(t)
	bad := NewBranch(ModeSurfaceZBased, BranchData{Mesh: MeshData{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1},
		Faces:     []uint32{0, 1, 2},
	}})
	good := NewBranch(ModeSurfaceZBased, BranchData{Mesh: MeshData{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Faces:     []uint32{0, 1, 2},
	}})
	env.g.UpdateSketch("m", []Branch{bad, good, NewBranch(GraphModeN, BranchData{})})
	env.g.SetSketchOrder([]string{"m"})
	assert.NotPanics(t, env.g.RedrawAllLayersSynchronously)
	assert.Equal(t, 3, env.g.graphs.Triangles().VertexCount())
	assert.Equal(t, []int{3}, drawCounts(env, programID(t, env, "triangles")))
}

func TestSphereBelowMinimumResolutionSkipped(t *testing.T) {
	env := newTestEnv(t)
	env.g.graphs.cfg.SphereLatitudes = 1
	mesh := NewBranch(ModeSurfaceZBased, BranchData{Mesh: MeshData{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Faces:     []uint32{0, 1, 2},
	}})
	env.g.UpdateSketch("s", []Branch{
		NewBranch(ModeSphere, BranchData{Radius: 1}),
		NewBranch(ModePoint, BranchData{}),
		mesh,
	})
	env.g.SetSketchOrder([]string{"s"})
	assert.NotPanics(t, env.g.RedrawAllLayersSynchronously)
	assert.Equal(t, 3, env.g.graphs.Triangles().VertexCount())
	assert.Equal(t, []int{3}, drawCounts(env, programID(t, env, "triangles")))
}

func TestNewBranch(t *testing.T) {
	tests := []struct {
		mode GraphMode
		want Branch
	}{
		{ModeCurveParametricSpherical, &Curve{}},
		{ModeCurvePlanarGraph, &Curve{}},
		{ModeSurfaceImplicit, &SurfaceMesh{}},
		{ModeSurfaceParametric, &SurfaceMesh{}},
		{ModeTriangle, &Triangle{}},
		{ModeSphere, &Sphere{}},
		{ModePoint, &Point{}},
		{ModeSegment, &Segment{}},
		{ModeVector, &Segment{}},
		{ModeError, &Unsupported{}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			br := NewBranch(tt.mode, BranchData{Color: "#123456"})
			assert.IsType(t, tt.want, br)
			assert.Equal(t, tt.mode, br.AsBranchBase().Mode)
			assert.Equal(t, "#123456", br.AsBranchBase().Color)
		})
	}
	assert.True(t, NewBranch(ModeVector, BranchData{}).(*Segment).Vector)
	assert.False(t, NewBranch(ModeSegment, BranchData{}).(*Segment).Vector)
}

func TestClear(t *testing.T) {
	env := newTestEnv(t)
	env.g.UpdateSketch("s", []Branch{NewBranch(ModePoint, BranchData{})})
	env.g.Clear()
	assert.Empty(t, env.g.Sketches())
	assert.Equal(t, 1, env.plane.clears)
}

func TestDefaultViewportFromPlane(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, env.plane.DefaultViewport(), env.g.GetDefaultViewport())
}

func TestRemoveReleasesResources(t *testing.T) {
	env := newTestEnv(t)
	env.g.UpdateSketch("s", []Branch{NewBranch(ModePoint, BranchData{})})
	env.g.SetSketchOrder([]string{"s"})
	env.g.RedrawAllLayersSynchronously()
	env.g.Remove()
	assert.Positive(t, env.ctx.Count("DeleteProgram"))
	assert.Positive(t, env.ctx.Count("DeleteBuffer"))
}
