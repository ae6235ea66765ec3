// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Touch is a touch or mouse-button event on the graph element.
// A mouse is reported as a single touch.
type Touch struct {
	Base

	// Touches are the positions of all touches still active after
	// this event, relative to the graph element.
	Touches []mgl32.Vec2

	// Changed is the number of touches that changed in this event.
	Changed int
}

// NewTouch returns a touch event of the given type.
func NewTouch(typ Types, touches []mgl32.Vec2, changed int) *Touch {
	ev := &Touch{Touches: touches, Changed: changed}
	ev.Init(typ, typ != TouchMove)
	return ev
}

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{Touches: %v, Changed: %d, Time: %v}", ev.Type(), ev.Touches, ev.Changed, ev.Time().Format("04:05.000"))
}

func (ev *Touch) merge(later Event) {
	ev.Base.merge(later)
	if t, ok := later.(*Touch); ok {
		ev.Touches = t.Touches
		ev.Changed = max(ev.Changed, t.Changed)
	}
}
