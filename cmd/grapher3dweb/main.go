// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

// Command grapher3dweb runs the 3D grapher with the demo sketches in
// the <canvas id="grapher3d"> element of the page, or a new canvas
// filling the window when there is none.
package main

import (
	"log/slog"
	"syscall/js"
	"time"

	"cogentcore.org/grapher3d/demo"
	"cogentcore.org/grapher3d/gpu/webgl"
	"cogentcore.org/grapher3d/logx"
	"cogentcore.org/grapher3d/plane"
	"cogentcore.org/grapher3d/xyz"
)

// host schedules one animation frame per batch of redraw requests and
// takes the layout from the element the canvas fills.
type host struct {
	container js.Value
	g         *xyz.Grapher
	scheduler *webgl.Scheduler
	pending   bool
	selected  map[string]bool
}

func (h *host) Dispatch(a xyz.Action) {
	logx.Logger().Debug("grapher3dweb: action", slog.String("type", a.Type))
	if a.Type == xyz.ActionCommitViewport {
		h.g.SetUserRequestedViewport(a.Viewport)
	}
}

func (h *host) RequestRedrawGraph() {
	if h.pending || h.g == nil {
		return
	}
	h.pending = true
	h.scheduler.RequestAnimationFrame(func(time.Time) {
		h.pending = false
		h.g.Tick()
	})
}

func (h *host) Layout() plane.Screen {
	if h.container.Equal(js.Global()) {
		return plane.Screen{
			Width:  h.container.Get("innerWidth").Int(),
			Height: h.container.Get("innerHeight").Int(),
		}
	}
	return plane.Screen{
		Width:  h.container.Get("clientWidth").Int(),
		Height: h.container.Get("clientHeight").Int(),
	}
}

func (h *host) PropagatedSelectedIDs() map[string]bool { return h.selected }
func (h *host) IsTraceEnabled() bool { return false }

// canvasElement returns the canvas and the element whose size it
// takes: the parent of an existing canvas, or the window for a new one.
func canvasElement() (canvas, container js.Value) {
	doc := js.Global().Get("document")
	cv := doc.Call("getElementById", "grapher3d")
	if !cv.IsNull() {
		return cv, cv.Get("parentElement")
	}
	cv = doc.Call("createElement", "canvas")
	cv.Set("id", "grapher3d")
	style := cv.Get("style")
	style.Set("position", "fixed")
	style.Set("left", "0")
	style.Set("top", "0")
	doc.Get("body").Call("appendChild", cv)
	return cv, js.Global()
}

func main() {
	cv, container := canvasElement()
	ctx, err := webgl.NewContext(cv)
	if err != nil {
		logx.Logger().Error("grapher3dweb", slog.Any("err", err))
		return
	}
	sched := &webgl.Scheduler{}
	h := &host{container: container, scheduler: sched, selected: map[string]bool{}}
	g, err := xyz.NewGrapher(xyz.Options{
		Context:   ctx,
		Canvas:    webgl.Canvas{Value: cv},
		Host:      h,
		Clock:     webgl.Clock{},
		Scheduler: sched,
	})
	if err != nil {
		logx.Logger().Error("grapher3dweb", slog.Any("err", err))
		return
	}
	h.g = g
	webgl.BindEvents(cv, g.HandleEvent)
	js.Global().Call("addEventListener", "resize", js.FuncOf(func(js.Value, []js.Value) any {
		g.RedrawAllLayers()
		return nil
	}))
	demo.Load(g)
	g.RedrawAllLayers()
	select {}
}
