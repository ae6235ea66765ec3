// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// RedrawAllLayers marks the grapher dirty and asks the host for a
// frame. Any number of calls before the next [Grapher.Tick] result in
// one redraw.
func (g *Grapher) RedrawAllLayers() {
	g.redrawRequested = true
	g.host.RequestRedrawGraph()
}

// NeedsRedraw reports whether a redraw is pending.
func (g *Grapher) NeedsRedraw() bool { return g.redrawRequested }

// Tick redraws if a redraw was requested. The host calls it once per frame.
func (g *Grapher) Tick() {
	if g.redrawRequested {
		g.RedrawAllLayersSynchronously()
	}
}

// RedrawAllLayersSynchronously syncs the layout and draws the graphs
// and then the grid, unless the grapher is hidden.
func (g *Grapher) RedrawAllLayersSynchronously() {
	g.Update()
	if !g.isVisible {
		return
	}
	g.redrawRequested = false
	g.surface.BeginRedraw()
	g.graphs.Redraw(g.sketches, g.sketchOrder)
	g.grid.Redraw(g.projection)
}
