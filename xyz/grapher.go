// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz renders 3D graphs: an orbital camera, input controls,
// a rendering surface on an immediate-mode GL context, and the grid
// and graphs layers, all driven by a [Grapher] embedded in a host
// application that owns the 2D plane grapher and the evaluator.
package xyz

import (
	"image"
	"maps"
	"slices"

	"cogentcore.org/grapher3d/base/errors"
	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/events"
	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/plane"
)

var (
	// ErrNoHost is returned by [NewGrapher] without a [Host].
	ErrNoHost = errors.New("xyz: a Host is required")

	// ErrNoClock is returned by [NewGrapher] without a [Clock].
	ErrNoClock = errors.New("xyz: a Clock is required")
)

// Options configure a [Grapher].
type Options struct {

	// Context is the GL context to draw with. It is required.
	Context gpu.Context

	// Canvas is resized with the grapher, if set.
	Canvas gpu.Canvas

	// Host is the embedding application. It is required.
	Host Host

	// Plane is the 2D grapher, if any.
	Plane Plane

	// Settings are the graph settings, shared with the host.
	// They default to [plane.DefaultSettings].
	Settings *plane.Settings

	// Config defaults to [config.Default].
	Config *config.Config

	// Clock delivers the delayed callbacks of the controls on the
	// thread that owns the grapher. It is required; [SystemClock] is
	// only safe for hosts that serialize access to the grapher.
	Clock Clock

	// Scheduler defaults to an [ImmediateScheduler].
	Scheduler Scheduler
}

// Grapher is the 3D grapher. It owns the projection, the sketches and
// their draw order, and the layers that draw them. Changes only
// request a redraw; the host calls [Grapher.Tick] once per frame to
// perform it. All methods must be called from one goroutine.
type Grapher struct {
	host      Host
	plane     Plane
	settings  *plane.Settings
	cfg       *config.Config
	clock     Clock
	scheduler Scheduler

	surface  *Surface
	controls *Controls
	grid     *GridLayer
	graphs   *GraphsLayer

	projection            plane.Projection
	userRequestedViewport plane.Viewport
	hasUserRequested      bool

	sketches    map[string]*Sketch
	sketchOrder []string
	activeToken ActiveToken

	isDragging      bool
	isVisible       bool
	redrawRequested bool
}

// redrawHost marks the grapher dirty before forwarding redraw
// requests to the host.
type redrawHost struct {
	Host
	g *Grapher
}

func (rh redrawHost) RequestRedrawGraph() { rh.g.RedrawAllLayers() }

// NewGrapher returns a grapher drawing on opts.Context. It fails if
// there is no context, host or clock.
func NewGrapher(opts Options) (*Grapher, error) {
	if opts.Host == nil {
		return nil, ErrNoHost
	}
	if opts.Clock == nil {
		return nil, ErrNoClock
	}
	g := &Grapher{
		host:      opts.Host,
		plane:     opts.Plane,
		settings:  opts.Settings,
		cfg:       config.OrDefault(opts.Config),
		clock:     opts.Clock,
		scheduler: opts.Scheduler,
		sketches:  map[string]*Sketch{},
	}
	if g.settings == nil {
		g.settings = plane.DefaultSettings()
	}
	if g.scheduler == nil {
		g.scheduler = ImmediateScheduler{Clock: g.clock}
	}
	vp := plane.DefaultViewport()
	g.setUserRequestedViewport(vp)
	g.projection = plane.NewProjection(plane.DefaultScreen(), vp, g.settings)
	g.controls = newControls(g, g.cfg)

	sf, err := NewSurface(opts.Context, opts.Canvas, g.controls.Orientation, redrawHost{Host: g.host, g: g}, g.cfg)
	if err != nil {
		return nil, err
	}
	g.surface = sf
	g.applySettings()
	g.grid = NewGridLayer(sf, g.cfg.Rendering)
	g.graphs = NewGraphsLayer(sf, g.cfg.Rendering)
	return g, nil
}

// applySettings pushes the show flags and background to the surface.
func (g *Grapher) applySettings() {
	s := g.settings
	g.surface.ShowBox(s.ShowBox3D)
	g.surface.ShowAxes(s.ShowAxis3D)
	g.surface.ShowPlane(s.ShowPlane3D && s.ShowAxis3D)
	g.surface.SetBackgroundColor(s.BackgroundColor3D)
}

// SettingsChanged applies settings the host changed directly and
// requests a redraw.
func (g *Grapher) SettingsChanged() {
	g.applySettings()
	g.RedrawAllLayers()
}

func (g *Grapher) Controls() *Controls { return g.controls }
func (g *Grapher) Surface() *Surface { return g.surface }
func (g *Grapher) Settings() *plane.Settings { return g.settings }

// IsVisible reports whether the last layout gave the grapher an area.
func (g *Grapher) IsVisible() bool { return g.isVisible }

// IsDragging reports whether the user is dragging the camera.
func (g *Grapher) IsDragging() bool { return g.isDragging }

// HandleEvent passes an input event to the controls.
func (g *Grapher) HandleEvent(ev events.Event) {
	g.controls.HandleEvent(ev)
}

// BaseplaneWidth is the width in pixels the 2D grapher should render
// the base plane at.
func (g *Grapher) BaseplaneWidth() int {
	return g.cfg.Rendering.BaseplaneWidth
}

// UpdatePlaneMap replaces the base plane texture with img, a raster
// of the 2D graph, and requests a redraw.
func (g *Grapher) UpdatePlaneMap(img image.Image) {
	g.grid.UpdatePlaneMap(img, g.projection.Viewport)
	g.RedrawAllLayers()
}

// Resize sizes the drawing area to width×height CSS pixels.
// A pixelRatio of 0 uses the canvas ratio.
func (g *Grapher) Resize(width, height int, pixelRatio float64) {
	if width > 0 && height > 0 {
		scr := plane.Screen{Width: width, Height: height}
		if scr != g.projection.Screen {
			g.projection = g.projection.WithScreen(scr)
		}
	}
	g.surface.Resize(width, height, pixelRatio)
}

// Update synchronizes with the host layout: a zero-sized layout hides
// the grapher, anything else shows it at that size.
func (g *Grapher) Update() {
	layout := g.host.Layout()
	if layout.Width > 0 && layout.Height > 0 {
		g.setIsVisible(true)
		g.Resize(layout.Width, layout.Height, 0)
		return
	}
	g.setIsVisible(false)
}

func (g *Grapher) setIsVisible(visible bool) {
	if visible == g.isVisible {
		return
	}
	g.isVisible = visible
	if visible {
		g.RedrawAllLayers()
		return
	}
	g.surface.Resize(0, 0, 0)
}

// Projection returns the current projection.
func (g *Grapher) Projection() plane.Projection { return g.projection }

// CurrentViewport returns the viewport being shown.
func (g *Grapher) CurrentViewport() plane.Viewport { return g.projection.Viewport }

// UserRequestedViewport returns the last viewport the user asked for.
func (g *Grapher) UserRequestedViewport() plane.Viewport { return g.userRequestedViewport }

// SetUserRequestedViewport records vp as asked for by the user and
// shows it if it differs from the previous request.
func (g *Grapher) SetUserRequestedViewport(vp plane.Viewport) {
	g.setUserRequestedViewport(vp)
}

func (g *Grapher) setUserRequestedViewport(vp plane.Viewport) {
	if g.hasUserRequested && !g.userRequestedViewport.Equals(vp) {
		g.controls.SetViewport(vp)
	}
	g.userRequestedViewport = vp
	g.hasUserRequested = true
}

// GetDefaultViewport returns the viewport of a new graph.
func (g *Grapher) GetDefaultViewport() plane.Viewport {
	if g.plane != nil {
		return g.plane.DefaultViewport()
	}
	return plane.DefaultViewport()
}

// SetActiveToken records which expression tokens are selected and
// hovered, for the next [Grapher.UpdateSketch].
func (g *Grapher) SetActiveToken(tok ActiveToken) {
	g.activeToken = tok
}

// GraphSketch returns the sketch with id, or nil.
func (g *Grapher) GraphSketch(id string) *Sketch { return g.sketches[id] }

// AddGraphSketch adds or replaces a sketch.
func (g *Grapher) AddGraphSketch(sk *Sketch) {
	g.sketches[sk.ID] = sk
	g.RedrawAllLayers()
}

// RemoveGraphSketch removes the sketch with id.
func (g *Grapher) RemoveGraphSketch(id string) {
	if _, ok := g.sketches[id]; !ok {
		return
	}
	delete(g.sketches, id)
	g.RedrawAllLayers()
}

// Sketches returns the ids of all sketches, sorted.
func (g *Grapher) Sketches() []string {
	return slices.Sorted(maps.Keys(g.sketches))
}

// UpdateSketch replaces the sketch with id by one with branches, or
// removes it if there are none. The sketch takes its color and style
// from the first branch unless that is an error branch, and keeps the
// UI state of the sketch it replaces.
func (g *Grapher) UpdateSketch(id string, branches []Branch) {
	if len(branches) == 0 {
		g.RemoveGraphSketch(id)
		return
	}
	sk := NewSketch(id, branches)
	if first := branches[0].AsBranchBase(); first.Mode != ModeError {
		sk.Color = first.Color
		if first.Style != "" {
			sk.Style = first.Style
		}
	}
	sk.UpdateFrom(g.sketches[id])
	selected := g.host.PropagatedSelectedIDs()[id]
	sk.UI.Selected = selected
	sk.UI.TokenHovered = id == g.activeToken.Hovered
	sk.UI.TokenSelected = id == g.activeToken.Selected
	sk.UI.ShowPOI = selected && g.host.IsTraceEnabled()
	sk.UI.ShowHighlight = selected
	g.AddGraphSketch(sk)
}

// SelectSketch marks a sketch selected.
func (g *Grapher) SelectSketch(id string) {
	if sk := g.sketches[id]; sk != nil {
		sk.UI.Selected = true
		sk.UI.ShowPOI = g.host.IsTraceEnabled()
		sk.UI.ShowHighlight = true
	}
}

// DeselectSketch clears the selection of a sketch.
func (g *Grapher) DeselectSketch(id string) {
	if sk := g.sketches[id]; sk != nil {
		sk.UI.Selected = false
		sk.UI.ShowPOI = false
		sk.UI.ShowHighlight = false
	}
}

// SketchOrder returns the draw order.
func (g *Grapher) SketchOrder() []string { return g.sketchOrder }

// SetSketchOrder sets the draw order, requesting a redraw if it changed.
func (g *Grapher) SetSketchOrder(order []string) {
	if slices.Equal(order, g.sketchOrder) {
		return
	}
	g.sketchOrder = slices.Clone(order)
	g.RedrawAllLayers()
}

// Clear removes all sketches here and in the 2D grapher.
func (g *Grapher) Clear() {
	if g.plane != nil {
		g.plane.Clear()
	}
	clear(g.sketches)
	g.RedrawAllLayers()
}

// Remove stops input handling and releases all GPU resources.
// The grapher must not be used afterwards.
func (g *Grapher) Remove() {
	g.controls.Remove()
	g.grid.Release()
	g.graphs.Release()
	g.surface.Release()
}
