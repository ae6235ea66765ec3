// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"slices"
	"sync"
	"time"

	"cogentcore.org/grapher3d/xyz"
)

// Loop is an [xyz.Clock] and [xyz.Scheduler] for a render loop that
// owns its thread, as glfw requires. Timers and animation frames only
// run inside [Loop.Run], so they never race with drawing.
type Loop struct {
	mu     sync.Mutex
	now    func() time.Time
	timers []*loopTimer
	frames map[int]func(time.Time)
	nextID int
	tasks  []func()
}

type loopTimer struct {
	loop *Loop
	at   time.Time
	f    func()
	done bool
}

// Stop prevents the timer from firing. It reports whether the timer
// was still pending.
func (t *loopTimer) Stop() bool {
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	if i := slices.Index(l.timers, t); i >= 0 {
		l.timers = slices.Delete(l.timers, i, i+1)
	}
	return true
}

// NewLoop returns a loop on the system clock.
func NewLoop() *Loop {
	return &Loop{now: time.Now, frames: map[int]func(time.Time){}}
}

func (l *Loop) Now() time.Time { return l.now() }

func (l *Loop) AfterFunc(d time.Duration, f func()) xyz.Timer {
	l.mu.Lock()
	defer l.mu.Unlock()
	t := &loopTimer{loop: l, at: l.now().Add(d), f: f}
	l.timers = append(l.timers, t)
	return t
}

func (l *Loop) RequestAnimationFrame(f func(now time.Time)) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.frames[l.nextID] = f
	return l.nextID
}

func (l *Loop) CancelAnimationFrame(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.frames, id)
}

// Post queues f to run at the start of the next [Loop.Run].
// It is safe to call from any goroutine.
func (l *Loop) Post(f func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append(l.tasks, f)
}

// Run runs the posted tasks, then the timers due at now in deadline
// order, then the animation frames requested so far.
// Call it once per frame from the render thread.
func (l *Loop) Run(now time.Time) {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	var due []*loopTimer
	l.timers = slices.DeleteFunc(l.timers, func(t *loopTimer) bool {
		if t.at.After(now) {
			return false
		}
		due = append(due, t)
		return true
	})
	l.mu.Unlock()

	for _, f := range tasks {
		f()
	}
	slices.SortStableFunc(due, func(a, b *loopTimer) int { return a.at.Compare(b.at) })
	for _, t := range due {
		if l.fire(t) {
			t.f()
		}
	}

	l.mu.Lock()
	frames := l.frames
	l.frames = map[int]func(time.Time){}
	l.mu.Unlock()
	ids := make([]int, 0, len(frames))
	for id := range frames {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		frames[id](now)
	}
}

// fire marks t done, unless an earlier callback stopped it.
func (l *Loop) fire(t *loopTimer) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}
