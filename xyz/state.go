// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/grapher3d/logx"
	"cogentcore.org/grapher3d/plane"
)

// GetState returns the viewport and the 3D settings as a flat state.
// The random seed belongs to the evaluator and is left out.
func (g *Grapher) GetState(opts StateOptions) plane.State {
	st := plane.State{"viewport": g.CurrentViewport().ToObject()}
	for _, name := range plane.StateProperties {
		if name == "randomSeed" {
			continue
		}
		st[name], _ = g.settings.Property(name)
	}
	if opts.StripDefaults {
		st = plane.StripDefaults(st)
	}
	return st
}

// SetGrapherState restores a state from [Grapher.GetState]. The 2D
// grapher gets it first. Settings missing from state revert to their
// defaults, invalid ones are dropped, and a viewport, if present,
// becomes the user-requested viewport.
func (g *Grapher) SetGrapherState(state plane.State, opts StateOptions) {
	if g.plane != nil {
		g.plane.SetGrapherState(state, opts)
	}
	if !opts.DoNotClear {
		g.Clear()
	}
	g.copyGraphProperties(state)
	if _, ok := state["viewport"]; ok {
		vp, _, err := state.Viewport()
		if err == nil && !vp.IsValid(g.settings.AxisScale()) {
			err = plane.ErrInvalidViewport
		}
		if err != nil {
			logx.Logger().Warn("xyz.Grapher.SetGrapherState: ignoring viewport", slog.Any("err", err))
		} else {
			g.setUserRequestedViewport(vp)
			g.controls.SetViewport(vp)
		}
	}
	g.applySettings()
	g.RedrawAllLayers()
}

// copyGraphProperties sets every state property from state over the
// defaults.
func (g *Grapher) copyGraphProperties(state plane.State) {
	merged := plane.DefaultState()
	for name, v := range state {
		merged[name] = v
	}
	for name, v := range plane.ValidateSettings(merged) {
		if err := g.settings.SetProperty(name, v); err != nil {
			logx.Logger().Warn("xyz.Grapher.SetGrapherState", slog.Any("err", err))
		}
	}
}

// GetUndoRedoState returns all settings, including the random seed,
// with the user-requested viewport rather than the one on screen.
func (g *Grapher) GetUndoRedoState() plane.State {
	snapshot := g.settings.Clone()
	st := plane.State{"viewport": g.userRequestedViewport.ToObject()}
	for _, name := range plane.StateProperties {
		st[name], _ = snapshot.Property(name)
	}
	return st
}
