// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/grapher3d/plane"
)

// Action types dispatched to the [Host].
const (
	ActionDragStart = "grapher/drag-start"
	ActionDragMove  = "grapher/drag-move"
	ActionDragEnd   = "grapher/drag-end"

	// ActionCommitViewport records a settled viewport in the undo history.
	ActionCommitViewport = "commit-user-requested-viewport"
)

// Action is a message to the host application.
type Action struct {
	Type string

	// Viewport is set for [ActionCommitViewport].
	Viewport plane.Viewport
}

// Host is the application embedding the grapher.
type Host interface {

	// Dispatch delivers an action to the application.
	Dispatch(a Action)

	// RequestRedrawGraph asks the host to call [Grapher.Tick] soon.
	RequestRedrawGraph()

	// Layout returns the current size of the graph area. A zero
	// dimension hides the grapher.
	Layout() plane.Screen

	// PropagatedSelectedIDs returns the ids of the selected expressions.
	PropagatedSelectedIDs() map[string]bool

	// IsTraceEnabled reports whether points of interest are traced.
	IsTraceEnabled() bool
}

// Plane is the 2D grapher that owns the evaluator state and the base
// plane raster. The 3D grapher forwards whole-graph state to it.
type Plane interface {
	SetGrapherState(state plane.State, opts StateOptions)
	DefaultViewport() plane.Viewport
	Clear()
}

// StateOptions control [Grapher.GetState] and [Grapher.SetGrapherState].
type StateOptions struct {

	// StripDefaults omits settings equal to their defaults.
	StripDefaults bool

	// DoNotClear keeps the existing sketches when setting state.
	DoNotClear bool
}

// ActiveToken identifies the expressions whose tokens are hovered
// and selected in the expression list.
type ActiveToken struct {
	Selected string
	Hovered  string
}
