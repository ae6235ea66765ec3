// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package main

import (
	"log/slog"

	"cogentcore.org/grapher3d/gpu/desktop"
	"cogentcore.org/grapher3d/logx"
	"cogentcore.org/grapher3d/plane"
	"cogentcore.org/grapher3d/xyz"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// host is the embedding application of the demo: the window gives
// the layout and committed viewports become the user request, as an
// undo history would record them.
type host struct {
	win      *desktop.Window
	g        *xyz.Grapher
	selected map[string]bool
}

func (h *host) Dispatch(a xyz.Action) {
	logx.Logger().Debug("grapher3d: action", slog.String("type", a.Type))
	if a.Type == xyz.ActionCommitViewport && h.g != nil {
		h.g.SetUserRequestedViewport(a.Viewport)
	}
}

// RequestRedrawGraph does nothing: the render loop ticks every frame.
func (h *host) RequestRedrawGraph() {}

func (h *host) Layout() plane.Screen {
	if h.win.GetAttrib(glfw.Iconified) == glfw.True {
		return plane.Screen{}
	}
	w, ht := h.win.GetSize()
	return plane.Screen{Width: w, Height: ht}
}

func (h *host) PropagatedSelectedIDs() map[string]bool { return h.selected }
func (h *host) IsTraceEnabled() bool { return false }
