// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math"
	"time"

	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/events"
	"cogentcore.org/grapher3d/math32"
	"cogentcore.org/grapher3d/plane"
	"github.com/go-gl/mathgl/mgl32"
)

// Controls turns pointer, touch and wheel input into camera motion.
// A drag rotates the camera, a pinch or the wheel zooms, and a
// viewport that settles is committed to the host after a delay.
type Controls struct {

	// Orientation is the camera. Only the controls mutate it, in place,
	// since the surface shares it.
	Orientation *Orientation

	g         *Grapher
	cfg       config.Interaction
	camera    config.Camera
	listeners events.Listeners
	commit    *Debouncer

	isDragging  bool
	prevTouches []mgl32.Vec2
	mousePt     mgl32.Vec2

	isScrolling       bool
	lastWheelPt       mgl32.Vec2
	preventScrollZoom bool
	lastScrollZoom    time.Time

	// animation is the pending animation frame, or 0.
	animation int
}

func newControls(g *Grapher, cfg *config.Config) *Controls {
	ct := &Controls{
		g:      g,
		cfg:    cfg.Interaction,
		camera: cfg.Camera,
	}
	ct.Orientation = ct.defaultOrientation()
	ct.commit = NewDebouncer(g.clock, ct.cfg.CommitDelay, ct.commitViewport)
	ct.listeners.Init()
	ct.listeners.Add(events.TouchStart, ct.tapStart)
	ct.listeners.Add(events.TouchMove, ct.tapMove)
	ct.listeners.Add(events.TouchEnd, ct.tapEnd)
	ct.listeners.Add(events.TouchCancel, ct.tapEnd)
	ct.listeners.Add(events.Wheel, ct.wheel)
	ct.listeners.Add(events.WindowWheel, func(ev events.Event) {
		ct.lastWheelPt = ev.(*events.MouseWheel).Where
	})
	ct.listeners.Add(events.Scroll, func(events.Event) { ct.isScrolling = true })
	ct.listeners.Add(events.MouseMove, ct.mouseMove)
	ct.listeners.Add(events.KeyUp, ct.armScrollZoomCooldown)
	ct.listeners.Add(events.Blur, ct.armScrollZoomCooldown)
	return ct
}

func (ct *Controls) defaultOrientation() *Orientation {
	or := NewOrientation(ct.camera.Distance, ct.camera.Pitch, ct.camera.Yaw)
	or.SetFieldOfView(ct.camera.FieldOfView * math.Pi / 180)
	return or
}

// HandleEvent processes one input event.
func (ct *Controls) HandleEvent(ev events.Event) {
	ct.listeners.Call(ev)
}

// IsDragging reports whether a drag is in progress.
func (ct *Controls) IsDragging() bool { return ct.isDragging }

// MousePoint returns the last pointer position seen outside a drag,
// including while the viewport is locked.
func (ct *Controls) MousePoint() mgl32.Vec2 { return ct.mousePt }

// IsViewportLocked reports whether the application or the user locked
// the view.
func (ct *Controls) IsViewportLocked() bool {
	return ct.g.projection.IsViewportLocked()
}

func (ct *Controls) requestRedraw() {
	ct.g.RedrawAllLayers()
}

func (ct *Controls) tapStart(ev events.Event) {
	te := ev.(*events.Touch)
	if !ct.isDragging {
		if ct.IsViewportLocked() || len(te.Touches) != te.Changed {
			return
		}
		ct.isDragging = true
		ct.g.isDragging = true
		ct.g.host.Dispatch(Action{Type: ActionDragStart})
	}
	ct.prevTouches = append(ct.prevTouches[:0], te.Touches...)
	te.SetHandled()
}

func (ct *Controls) tapMove(ev events.Event) {
	te := ev.(*events.Touch)
	if !ct.isDragging || ct.IsViewportLocked() {
		return
	}
	switch {
	case len(ct.prevTouches) == 2 && len(te.Touches) == 2:
		ct.pinch(ct.prevTouches, te.Touches)
	case len(ct.prevTouches) == 1 && len(te.Touches) >= 1:
		d := te.Touches[0].Sub(ct.prevTouches[0])
		ct.rotate(float64(d.X()), float64(d.Y()))
	}
	ct.prevTouches = append(ct.prevTouches[:0], te.Touches...)
	ct.g.host.Dispatch(Action{Type: ActionDragMove})
	ct.requestRedraw()
	te.SetHandled()
}

func (ct *Controls) tapEnd(ev events.Event) {
	te := ev.(*events.Touch)
	if !ct.isDragging {
		return
	}
	ct.prevTouches = append(ct.prevTouches[:0], te.Touches...)
	if len(ct.prevTouches) == 0 {
		ct.isDragging = false
		ct.g.isDragging = false
		ct.commit.Schedule()
		ct.g.host.Dispatch(Action{Type: ActionDragEnd})
	}
	ct.requestRedraw()
	te.SetHandled()
}

// rotate turns the camera for a drag of dx, dy CSS pixels. The angle
// per pixel grows with the distance so far cameras turn faster.
func (ct *Controls) rotate(dx, dy float64) {
	_, height, _ := ct.g.surface.Size()
	if height <= 0 {
		return
	}
	or := ct.Orientation
	m := or.FieldOfView() / float64(height) * or.Distance() * ct.cfg.RotateDamping
	or.SetPitch(or.Pitch() + dy*m)
	or.SetYaw(or.Yaw() + dx*m)
	ct.commit.Schedule()
}

// pinch zooms by the ratio of the spans of two touch pairs.
func (ct *Controls) pinch(prev, cur []mgl32.Vec2) {
	before := prev[1].Sub(prev[0]).Len()
	after := cur[1].Sub(cur[0]).Len()
	if before <= 0 || after <= 0 {
		return
	}
	ct.setDistance(ct.Orientation.Distance() * float64(before/after))
	ct.commit.Schedule()
}

// Zoom multiplies the distance by the zoom factor for positive steps
// and by its reciprocal for negative ones.
func (ct *Controls) Zoom(steps float64) {
	ct.setDistance(ct.Orientation.Distance() * math.Pow(ct.cfg.ZoomFactor, steps))
}

func (ct *Controls) setDistance(d float64) {
	ct.Orientation.SetDistance(math32.Clamp(d, ct.camera.MinDistance, ct.camera.MaxDistance))
}

func (ct *Controls) wheel(ev events.Event) {
	we := ev.(*events.MouseWheel)
	dx, dy := float64(we.Delta.X()), float64(we.Delta.Y())
	if dx == 0 && dy == 0 {
		return
	}
	now := ct.g.clock.Now()
	if ct.preventScrollZoom && now.Sub(ct.lastScrollZoom) > ct.cfg.ScrollZoomCooldown {
		ct.preventScrollZoom = false
	}
	ct.lastScrollZoom = now
	if ct.preventScrollZoom || ct.isScrolling || ct.IsViewportLocked() {
		return
	}
	delta := dy
	if delta == 0 {
		delta = dx
	}
	if delta > 0 {
		ct.Zoom(1)
	} else {
		ct.Zoom(-1)
	}
	ct.commit.Schedule()
	ct.requestRedraw()
	we.SetHandled()
}

func (ct *Controls) mouseMove(ev events.Event) {
	me := ev.(*events.Mouse)
	if ct.isScrolling {
		d := me.Where.Sub(ct.lastWheelPt)
		th := ct.cfg.ScrollMoveThreshold
		if float64(d.Dot(d)) >= th*th {
			ct.isScrolling = false
		}
	}
	if !ct.isDragging {
		ct.mousePt = me.Where
	}
}

func (ct *Controls) armScrollZoomCooldown(events.Event) {
	ct.preventScrollZoom = true
}

// commitViewport records the viewport in the host history once it
// has settled and differs from the last one the user asked for.
func (ct *Controls) commitViewport() {
	if ct.isDragging {
		return
	}
	vp := ct.g.projection.Viewport
	if vp.Equals(ct.g.userRequestedViewport) {
		return
	}
	ct.g.host.Dispatch(Action{Type: ActionCommitViewport, Viewport: vp})
}

// SetViewport adopts vp if it is valid and differs from the current
// viewport. Any running viewport animation is cancelled first.
func (ct *Controls) SetViewport(vp plane.Viewport) {
	ct.cancelAnimation()
	ct.adoptViewport(vp)
}

func (ct *Controls) adoptViewport(vp plane.Viewport) bool {
	g := ct.g
	if !vp.IsValid(g.settings.AxisScale()) || vp.Equals(g.projection.Viewport) {
		return false
	}
	g.projection = plane.NewProjection(g.projection.Screen, vp, g.settings)
	ct.requestRedraw()
	return true
}

// AnimateViewport moves to vp over duration on the animation frame
// scheduler, or the configured duration if it is 0. The settled
// viewport is committed like any other change.
func (ct *Controls) AnimateViewport(vp plane.Viewport, duration time.Duration) {
	ct.cancelAnimation()
	g := ct.g
	if !vp.IsValid(g.settings.AxisScale()) || vp.Equals(g.projection.Viewport) {
		return
	}
	if duration <= 0 {
		duration = ct.cfg.AnimationDuration
	}
	from := g.projection.Viewport
	ct.animate(duration, func(t float64) {
		ct.adoptViewport(from.Lerp(vp, t))
	})
}

// IsDefaultOrientation reports whether the camera is at its initial pose.
func (ct *Controls) IsDefaultOrientation() bool {
	def := ct.defaultOrientation()
	def.projection = ct.Orientation.projection
	return ct.Orientation.Equals(def)
}

// ResetOrientation returns the camera to its initial pose, animated
// over the configured duration if animate is set.
func (ct *Controls) ResetOrientation(animate bool) {
	ct.cancelAnimation()
	to := ct.defaultOrientation()
	to.projection = ct.Orientation.projection
	if !animate {
		*ct.Orientation = *to
		ct.requestRedraw()
		return
	}
	from := ct.Orientation.Clone()
	ct.animate(ct.cfg.AnimationDuration, func(t float64) {
		*ct.Orientation = *from.Lerp(to, t)
		ct.requestRedraw()
	})
}

// animate calls step with the eased fraction of duration elapsed on
// every animation frame, ending with step(1).
func (ct *Controls) animate(duration time.Duration, step func(t float64)) {
	start := ct.g.clock.Now()
	var frame func(now time.Time)
	frame = func(now time.Time) {
		t := math32.Clamp(float64(now.Sub(start))/float64(duration), 0, 1)
		ct.animation = 0
		step(easeInOut(t))
		if t < 1 {
			ct.animation = ct.g.scheduler.RequestAnimationFrame(frame)
			return
		}
		ct.commit.Schedule()
	}
	ct.animation = ct.g.scheduler.RequestAnimationFrame(frame)
}

func (ct *Controls) cancelAnimation() {
	if ct.animation != 0 {
		ct.g.scheduler.CancelAnimationFrame(ct.animation)
		ct.animation = 0
	}
}

// Remove stops all pending callbacks and input handling.
func (ct *Controls) Remove() {
	ct.commit.Cancel()
	ct.cancelAnimation()
	ct.listeners.Reset()
}

func easeInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}
