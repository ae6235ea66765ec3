// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math"
	"testing"
	"time"

	"cogentcore.org/grapher3d/events"
	"cogentcore.org/grapher3d/plane"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wheel(dy float32) events.Event {
	return events.NewWheel(mgl32.Vec2{10, 10}, mgl32.Vec2{0, dy})
}

func touch(typ events.Types, changed int, pts ...mgl32.Vec2) events.Event {
	return events.NewTouch(typ, pts, changed)
}

func TestWheelZoom(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	require.Equal(t, 40.0, ct.Orientation.Distance())

	env.g.HandleEvent(wheel(100))
	assert.InDelta(t, 40*1.0625, ct.Orientation.Distance(), 1e-9)
	env.g.HandleEvent(wheel(-3))
	assert.InDelta(t, 40, ct.Orientation.Distance(), 1e-9)

	for range 3 {
		env.g.HandleEvent(wheel(-1))
	}
	assert.InDelta(t, 40*math.Pow(1.0625, -3), ct.Orientation.Distance(), 1e-9)
	assert.True(t, env.g.NeedsRedraw())
}

func TestWheelZeroDeltaIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.host.redraws = 0
	env.g.HandleEvent(events.NewWheel(mgl32.Vec2{}, mgl32.Vec2{}))
	assert.Equal(t, 40.0, env.g.Controls().Orientation.Distance())
	assert.Zero(t, env.host.redraws)
}

func TestWheelDistanceClamp(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	for range 500 {
		env.g.HandleEvent(wheel(-1))
	}
	assert.Equal(t, 0.1, ct.Orientation.Distance())
	for range 500 {
		env.g.HandleEvent(wheel(1))
	}
	assert.Equal(t, 1e5, ct.Orientation.Distance())
}

func TestScrollZoomCooldown(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	env.g.HandleEvent(wheel(1))
	d := ct.Orientation.Distance()

	env.g.HandleEvent(events.NewBase(events.KeyUp))
	env.clock.Advance(10 * time.Millisecond)
	env.g.HandleEvent(wheel(1))
	env.clock.Advance(40 * time.Millisecond)
	env.g.HandleEvent(wheel(1))
	assert.Equal(t, d, ct.Orientation.Distance(), "wheel events within the cooldown keep zoom off")

	env.clock.Advance(100 * time.Millisecond)
	env.g.HandleEvent(wheel(1))
	assert.InDelta(t, d*1.0625, ct.Orientation.Distance(), 1e-9)

	env.g.HandleEvent(events.NewBase(events.Blur))
	env.clock.Advance(10 * time.Millisecond)
	env.g.HandleEvent(wheel(1))
	assert.InDelta(t, d*1.0625, ct.Orientation.Distance(), 1e-9)
}

func TestPageScrollSuppressesZoom(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	env.g.HandleEvent(events.NewBase(events.Scroll))
	env.g.HandleEvent(events.NewWindowWheel(mgl32.Vec2{100, 100}, mgl32.Vec2{0, 1}))
	env.g.HandleEvent(wheel(1))
	assert.Equal(t, 40.0, ct.Orientation.Distance())

	env.g.HandleEvent(events.NewMouseMove(mgl32.Vec2{105, 100}))
	env.g.HandleEvent(wheel(1))
	assert.Equal(t, 40.0, ct.Orientation.Distance())

	env.g.HandleEvent(events.NewMouseMove(mgl32.Vec2{106, 108}))
	env.g.HandleEvent(wheel(1))
	assert.InDelta(t, 40*1.0625, ct.Orientation.Distance(), 1e-9)
	assert.Equal(t, mgl32.Vec2{106, 108}, ct.MousePoint())
}

func TestDragRotate(t *testing.T) {
	env := newTestEnv(t)
	env.g.Update()
	ct := env.g.Controls()
	pitch, yaw := ct.Orientation.Pitch(), ct.Orientation.Yaw()

	env.g.HandleEvent(touch(events.TouchStart, 1, mgl32.Vec2{100, 100}))
	assert.True(t, env.g.IsDragging())
	env.g.HandleEvent(touch(events.TouchMove, 1, mgl32.Vec2{110, 105}))
	env.g.HandleEvent(touch(events.TouchEnd, 1))
	assert.False(t, env.g.IsDragging())

	m := math.Pi / 4 / 600 * 40 * 0.2
	assert.InDelta(t, pitch+5*m, ct.Orientation.Pitch(), 1e-6)
	assert.InDelta(t, yaw+10*m, ct.Orientation.Yaw(), 1e-6)
	assert.Equal(t, []string{ActionDragStart, ActionDragMove, ActionDragEnd}, env.host.actionTypes())

	// rotation alone leaves the viewport, so nothing is committed
	env.clock.Advance(2 * time.Second)
	assert.Len(t, env.host.actions, 3)
}

func TestDragPitchStaysClamped(t *testing.T) {
	env := newTestEnv(t)
	env.g.Update()
	ct := env.g.Controls()
	env.g.HandleEvent(touch(events.TouchStart, 1, mgl32.Vec2{0, 0}))
	env.g.HandleEvent(touch(events.TouchMove, 1, mgl32.Vec2{0, 1e6}))
	assert.Equal(t, math.Pi/2, ct.Orientation.Pitch())
}

func TestSpuriousTouchStartIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.g.HandleEvent(touch(events.TouchStart, 1, mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}))
	assert.False(t, env.g.IsDragging())
	assert.Empty(t, env.host.actions)
}

func TestLockedViewportIgnoresInput(t *testing.T) {
	env := newTestEnv(t)
	env.g.Update()
	env.g.Settings().UserLockedViewport = true
	ct := env.g.Controls()
	assert.True(t, ct.IsViewportLocked())

	before := ct.Orientation.Clone()
	env.g.HandleEvent(touch(events.TouchStart, 1, mgl32.Vec2{0, 0}))
	env.g.HandleEvent(touch(events.TouchMove, 1, mgl32.Vec2{50, 50}))
	env.g.HandleEvent(wheel(1))
	assert.False(t, env.g.IsDragging())
	assert.True(t, ct.Orientation.Equals(before))
	assert.Empty(t, env.host.actions)

	// the pointer is still tracked
	env.g.HandleEvent(events.NewMouseMove(mgl32.Vec2{30, 40}))
	assert.Equal(t, mgl32.Vec2{30, 40}, ct.MousePoint())
}

func TestPinchZoom(t *testing.T) {
	env := newTestEnv(t)
	env.g.Update()
	ct := env.g.Controls()
	env.g.HandleEvent(touch(events.TouchStart, 2, mgl32.Vec2{0, 0}, mgl32.Vec2{100, 0}))
	env.g.HandleEvent(touch(events.TouchMove, 1, mgl32.Vec2{0, 0}, mgl32.Vec2{200, 0}))
	assert.InDelta(t, 20, ct.Orientation.Distance(), 1e-6)

	// lifting one finger keeps the drag going
	env.g.HandleEvent(touch(events.TouchEnd, 1, mgl32.Vec2{0, 0}))
	assert.True(t, env.g.IsDragging())
	env.g.HandleEvent(touch(events.TouchEnd, 1))
	assert.False(t, env.g.IsDragging())
}

func TestCommitViewport(t *testing.T) {
	env := newTestEnv(t)
	vp := plane.Viewport{Xmin: -1, Xmax: 1, Ymin: -2, Ymax: 2, Zmin: -3, Zmax: 3}
	env.g.Controls().SetViewport(vp)
	assert.Equal(t, vp, env.g.CurrentViewport())

	env.g.HandleEvent(wheel(1))
	env.clock.Advance(500 * time.Millisecond)
	env.g.HandleEvent(wheel(1))
	env.clock.Advance(900 * time.Millisecond)
	assert.Empty(t, env.host.actions)
	env.clock.Advance(100 * time.Millisecond)
	require.Len(t, env.host.actions, 1)
	assert.Equal(t, Action{Type: ActionCommitViewport, Viewport: vp}, env.host.actions[0])
}

func TestCommitSkippedWhileDragging(t *testing.T) {
	env := newTestEnv(t)
	env.g.Controls().SetViewport(plane.Viewport{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1, Zmin: -1, Zmax: 1})
	env.g.HandleEvent(wheel(1))
	env.g.HandleEvent(touch(events.TouchStart, 1, mgl32.Vec2{0, 0}))
	env.clock.Advance(2 * time.Second)
	assert.Equal(t, []string{ActionDragStart}, env.host.actionTypes())
}

func TestSetViewport(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	def := env.g.CurrentViewport()

	ct.SetViewport(plane.Viewport{Xmin: 1, Xmax: -1, Ymin: -1, Ymax: 1, Zmin: -1, Zmax: 1})
	assert.Equal(t, def, env.g.CurrentViewport())

	env.g.Settings().XAxisScale = plane.Logarithmic
	ct.SetViewport(plane.Viewport{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1, Zmin: -1, Zmax: 1})
	assert.Equal(t, def, env.g.CurrentViewport())

	vp := plane.Viewport{Xmin: 0.1, Xmax: 10, Ymin: -1, Ymax: 1, Zmin: -1, Zmax: 1}
	ct.SetViewport(vp)
	assert.Equal(t, vp, env.g.CurrentViewport())
	assert.Equal(t, vp, env.g.Projection().Viewport)
}

func TestAnimateViewport(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	start := env.clock.Now()
	vp := plane.Viewport{Xmin: -20, Xmax: 20, Ymin: -20, Ymax: 20, Zmin: -20, Zmax: 20}

	ct.AnimateViewport(vp, 100*time.Millisecond)
	assert.Equal(t, plane.DefaultViewport(), env.g.CurrentViewport())
	env.sched.RunFrame(start.Add(50 * time.Millisecond))
	assert.InDelta(t, 15, env.g.CurrentViewport().Xmax, 1e-9)
	env.sched.RunFrame(start.Add(200 * time.Millisecond))
	assert.Equal(t, vp, env.g.CurrentViewport())
	assert.Empty(t, env.sched.frames)

	env.clock.Advance(time.Second)
	require.Len(t, env.host.actions, 1)
	assert.Equal(t, vp, env.host.actions[0].Viewport)
}

func TestSetViewportCancelsAnimation(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	other := plane.Viewport{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2, Zmin: -2, Zmax: 2}
	ct.AnimateViewport(plane.Viewport{Xmin: -20, Xmax: 20, Ymin: -20, Ymax: 20, Zmin: -20, Zmax: 20}, 0)
	ct.SetViewport(other)
	env.sched.RunFrame(env.clock.Now().Add(time.Hour))
	assert.Equal(t, other, env.g.CurrentViewport())
}

func TestResetOrientation(t *testing.T) {
	env := newTestEnv(t)
	env.g.Update()
	ct := env.g.Controls()
	or := ct.Orientation
	assert.True(t, ct.IsDefaultOrientation())

	env.g.HandleEvent(touch(events.TouchStart, 1, mgl32.Vec2{0, 0}))
	env.g.HandleEvent(touch(events.TouchMove, 1, mgl32.Vec2{40, 30}))
	env.g.HandleEvent(touch(events.TouchEnd, 1))
	env.g.HandleEvent(wheel(1))
	assert.False(t, ct.IsDefaultOrientation())

	ct.ResetOrientation(false)
	assert.True(t, ct.IsDefaultOrientation())
	assert.Same(t, or, ct.Orientation)

	env.g.HandleEvent(wheel(1))
	ct.ResetOrientation(true)
	assert.False(t, ct.IsDefaultOrientation())
	env.sched.RunFrame(env.clock.Now().Add(time.Hour))
	assert.True(t, ct.IsDefaultOrientation())
}

func TestControlsRemove(t *testing.T) {
	env := newTestEnv(t)
	ct := env.g.Controls()
	ct.SetViewport(plane.Viewport{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1, Zmin: -1, Zmax: 1})
	env.g.HandleEvent(wheel(1))
	ct.Remove()
	env.clock.Advance(2 * time.Second)
	assert.Empty(t, env.host.actions)

	d := ct.Orientation.Distance()
	env.g.HandleEvent(wheel(1))
	assert.Equal(t, d, ct.Orientation.Distance())
}
