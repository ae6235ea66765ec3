// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mouse is a pointer event with a position in CSS pixels relative to
// the graph element.
type Mouse struct {
	Base

	// Where is the pointer position.
	Where mgl32.Vec2
}

// NewMouseMove returns a [MouseMove] event.
func NewMouseMove(where mgl32.Vec2) *Mouse {
	ev := &Mouse{Where: where}
	ev.Init(MouseMove, false)
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Type(), ev.Where, ev.Time().Format("04:05.000"))
}

func (ev *Mouse) merge(later Event) {
	ev.Base.merge(later)
	if m, ok := later.(*Mouse); ok {
		ev.Where = m.Where
	}
}

// MouseWheel records the delta of a wheel gesture, in pixels.
type MouseWheel struct {
	Mouse

	// Delta is the amount of scrolling in each axis.
	Delta mgl32.Vec2
}

// NewWheel returns a [Wheel] event over the graph element.
func NewWheel(where, delta mgl32.Vec2) *MouseWheel {
	ev := &MouseWheel{Delta: delta}
	ev.Where = where
	ev.Init(Wheel, false)
	return ev
}

// NewWindowWheel returns a [WindowWheel] event.
func NewWindowWheel(where, delta mgl32.Vec2) *MouseWheel {
	ev := NewWheel(where, delta)
	ev.Typ = WindowWheel
	ev.unique = true
	return ev
}

func (ev *MouseWheel) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Time().Format("04:05.000"))
}

func (ev *MouseWheel) merge(later Event) {
	ev.Base.merge(later)
	if w, ok := later.(*MouseWheel); ok {
		ev.Where = w.Where
		ev.Delta = ev.Delta.Add(w.Delta)
	}
}
