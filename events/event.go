// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that drive the camera
// controls, independent of whether they came from the DOM or from a
// desktop window system.
package events

import (
	"fmt"
	"time"
)

// Event is the interface for input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsUnique reports whether the event must not be compressed
	// with like events.
	IsUnique() bool

	// IsHandled reports whether the event has already been handled.
	IsHandled() bool

	// SetHandled marks the event as handled, which stops
	// further [Listeners] from being called.
	SetHandled()

	// merge folds a later non-unique event of the same type into this one.
	merge(later Event)
}

// Base is the base type for events.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	handled bool
	unique  bool
}

// Init sets the type and generation time.
func (ev *Base) Init(typ Types, unique bool) {
	ev.Typ = typ
	ev.unique = unique
	if ev.GenTime.IsZero() {
		ev.GenTime = time.Now()
	}
}

func (ev *Base) Type() Types { return ev.Typ }
func (ev *Base) Time() time.Time { return ev.GenTime }
func (ev *Base) IsUnique() bool { return ev.unique }
func (ev *Base) IsHandled() bool { return ev.handled }
func (ev *Base) SetHandled() { ev.handled = true }
func (ev *Base) merge(later Event) { ev.GenTime = later.Time() }
func (ev *Base) String() string { return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05.000")) }

// NewBase returns a plain event with no payload, used for
// [Scroll], [KeyDown], [KeyUp] and [Blur].
func NewBase(typ Types) *Base {
	ev := &Base{}
	ev.Init(typ, true)
	return ev
}
