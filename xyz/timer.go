// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"time"
)

// Timer is a pending callback that can be stopped.
type Timer = interface {
	Stop() bool
}

// Clock is the source of time and delayed callbacks. Callbacks must be
// delivered on the thread that owns the [Grapher]; hosts whose timers
// fire elsewhere marshal them.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Scheduler runs callbacks before the next frame is painted.
type Scheduler interface {
	RequestAnimationFrame(f func(now time.Time)) int
	CancelAnimationFrame(id int)
}

// SystemClock is a [Clock] on the time package. Its callbacks run on
// their own goroutines, so a grapher may only use it when the host
// serializes every call into the grapher.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ImmediateScheduler runs every frame callback synchronously, which
// makes animations jump straight to their end.
type ImmediateScheduler struct {
	Clock Clock
}

func (s ImmediateScheduler) RequestAnimationFrame(f func(now time.Time)) int {
	c := s.Clock
	if c == nil {
		c = SystemClock{}
	}
	f(c.Now().Add(time.Hour))
	return 0
}

func (ImmediateScheduler) CancelAnimationFrame(int) {}

// Debouncer calls a function once, after a delay of inactivity:
// every [Debouncer.Schedule] restarts the delay.
type Debouncer struct {
	clock Clock
	delay time.Duration
	fn    func()
	timer Timer
}

// NewDebouncer returns a debouncer calling fn after delay.
func NewDebouncer(clock Clock, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{clock: clock, delay: delay, fn: fn}
}

// Schedule (re)starts the delay.
func (d *Debouncer) Schedule() {
	d.Cancel()
	var t Timer
	t = d.clock.AfterFunc(d.delay, func() {
		if d.timer != t {
			return
		}
		d.timer = nil
		d.fn()
	})
	d.timer = t
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	return d.timer != nil
}
