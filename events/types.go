// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
// The names follow the standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// names, since the grapher is driven by the DOM on the web and by
// translated window-system callbacks on the desktop.
// Unless otherwise noted, all events are Unique, meaning they are
// always delivered. Non-Unique events are subject to compression in
// a [Deque]: if the last queued event has the same type it is merged
// with the new one instead of adding another.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseMove is sent when the pointer moves anywhere in the window.
	// It is used to decide whether a page scroll has ended.
	// Not unique; compression keeps the latest position.
	MouseMove

	// TouchStart is when one or more touches (or the mouse button)
	// go down on the graph element.
	TouchStart

	// TouchMove is when active touches move.
	// Not unique; compression keeps the latest touch set.
	TouchMove

	// TouchEnd is when one or more touches are released.
	TouchEnd

	// TouchCancel is when the platform aborts the active touches.
	TouchCancel

	// Wheel is a wheel or trackpad scroll gesture over the graph element.
	// Not unique; compression sums the deltas.
	Wheel

	// WindowWheel is a wheel event seen anywhere in the window.
	// Only its position is used.
	WindowWheel

	// Scroll is sent when the page containing the graph scrolls.
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// Blur is sent when the window loses focus.
	Blur

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseMove", "TouchStart", "TouchMove", "TouchEnd", "TouchCancel", "Wheel", "WindowWheel", "Scroll", "KeyDown", "KeyUp", "Blur"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typesNames[tp]
}

// IsTouch reports whether the type is one of the touch types.
func (tp Types) IsTouch() bool {
	return tp >= TouchStart && tp <= TouchCancel
}
