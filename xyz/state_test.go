// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/grapher3d/plane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStateDefaults(t *testing.T) {
	env := newTestEnv(t)
	assert.Empty(t, env.g.GetState(StateOptions{StripDefaults: true}))

	st := env.g.GetState(StateOptions{})
	assert.NotContains(t, st, "randomSeed")
	assert.Contains(t, st, "viewport")
	assert.Equal(t, true, st["showBox3D"])
	assert.Equal(t, "linear", st["zAxisScale"])
}

func TestStateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	vp := plane.Viewport{Xmin: -3, Xmax: 3, Ymin: -2, Ymax: 2, Zmin: -1, Zmax: 1}
	in := plane.State{
		"viewport":          vp.ToObject(),
		"showBox3D":         false,
		"axisOpacity":       0.5,
		"backgroundColor3D": "#102030",
		"randomSeed":        "abc",
	}
	env.g.SetGrapherState(in, StateOptions{})

	s := env.g.Settings()
	assert.False(t, s.ShowBox3D)
	assert.Equal(t, 0.5, s.AxisOpacity)
	assert.Equal(t, "abc", s.RandomSeed)
	assert.False(t, env.g.Surface().IsShowBox())
	assert.Equal(t, "#102030", env.g.Surface().BackgroundColor())
	assert.Equal(t, vp, env.g.CurrentViewport())
	assert.Equal(t, vp, env.g.UserRequestedViewport())
	require.Len(t, env.plane.states, 1)
	assert.Equal(t, 1, env.plane.clears)
	assert.True(t, env.g.NeedsRedraw())

	out := env.g.GetState(StateOptions{StripDefaults: true})
	assert.Equal(t, plane.State{
		"viewport":          vp.ToObject(),
		"showBox3D":         false,
		"axisOpacity":       0.5,
		"backgroundColor3D": "#102030",
	}, out)

	// missing properties revert to their defaults
	env.g.SetGrapherState(plane.State{}, StateOptions{DoNotClear: true})
	assert.True(t, s.ShowBox3D)
	assert.Equal(t, 1, env.plane.clears)
	assert.Equal(t, vp, env.g.CurrentViewport())
}

func TestSetGrapherStateDropsInvalid(t *testing.T) {
	env := newTestEnv(t)
	env.g.SetGrapherState(plane.State{
		"axisOpacity": 5.0,
		"showAxis3D":  "yes",
		"viewport":    map[string]any{"xmin": 1, "xmax": -1, "ymin": 0, "ymax": 1},
	}, StateOptions{})
	s := env.g.Settings()
	assert.Equal(t, 0.9, s.AxisOpacity)
	assert.True(t, s.ShowAxis3D)
	assert.Equal(t, plane.DefaultViewport(), env.g.CurrentViewport())
}

func TestShowPlaneNeedsAxes(t *testing.T) {
	env := newTestEnv(t)
	assert.True(t, env.g.Surface().IsShowPlane())
	env.g.SetGrapherState(plane.State{"showAxis3D": false}, StateOptions{})
	assert.False(t, env.g.Surface().IsShowAxes())
	assert.False(t, env.g.Surface().IsShowPlane())
}

func TestUndoRedoState(t *testing.T) {
	env := newTestEnv(t)
	env.g.Settings().RandomSeed = "seed"
	env.g.Controls().SetViewport(plane.Viewport{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1, Zmin: -1, Zmax: 1})

	st := env.g.GetUndoRedoState()
	assert.Equal(t, "seed", st["randomSeed"])
	assert.Equal(t, plane.DefaultViewport().ToObject(), st["viewport"])
	for _, name := range plane.StateProperties {
		assert.Contains(t, st, name)
	}

	env.g.Settings().ShowBox3D = false
	assert.Equal(t, true, st["showBox3D"])
}

func TestSetUserRequestedViewport(t *testing.T) {
	env := newTestEnv(t)
	vp := plane.Viewport{Xmin: -4, Xmax: 4, Ymin: -4, Ymax: 4, Zmin: -4, Zmax: 4}
	env.g.SetUserRequestedViewport(vp)
	assert.Equal(t, vp, env.g.UserRequestedViewport())
	assert.Equal(t, vp, env.g.CurrentViewport())
}

func TestSetGrapherStateKeepsRequestOnInvalidViewport(t *testing.T) {
	env := newTestEnv(t)
	env.g.SetGrapherState(plane.State{
		"viewport": map[string]any{"xmin": 1, "xmax": -1, "ymin": 0, "ymax": 1},
	}, StateOptions{})
	assert.Equal(t, plane.DefaultViewport(), env.g.UserRequestedViewport())
}
