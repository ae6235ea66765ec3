// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"
	"testing"
	"time"

	"cogentcore.org/grapher3d/gpu/gpufake"
	"cogentcore.org/grapher3d/logx"
	"cogentcore.org/grapher3d/plane"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	layout   plane.Screen
	actions  []Action
	redraws  int
	selected map[string]bool
	trace    bool
}

func (h *fakeHost) Dispatch(a Action) { h.actions = append(h.actions, a) }
func (h *fakeHost) RequestRedrawGraph() { h.redraws++ }
func (h *fakeHost) Layout() plane.Screen { return h.layout }
func (h *fakeHost) PropagatedSelectedIDs() map[string]bool { return h.selected }
func (h *fakeHost) IsTraceEnabled() bool { return h.trace }

func (h *fakeHost) actionTypes() []string {
	var types []string
	for _, a := range h.actions {
		types = append(types, a.Type)
	}
	return types
}

type fakePlane struct {
	states []plane.State
	clears int
}

func (p *fakePlane) SetGrapherState(st plane.State, _ StateOptions) { p.states = append(p.states, st) }
func (p *fakePlane) DefaultViewport() plane.Viewport { return plane.Viewport{Xmin: -5, Xmax: 5, Ymin: -5, Ymax: 5, Zmin: -5, Zmax: 5} }
func (p *fakePlane) Clear() { p.clears++ }

type fakeTimer struct {
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

type fakeClock struct {
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward, firing due timers in order.
func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
	for i := 0; i < len(c.timers); i++ {
		t := c.timers[i]
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			t.f()
		}
	}
}

type fakeScheduler struct {
	next   int
	frames map[int]func(time.Time)
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{frames: map[int]func(time.Time){}}
}

func (s *fakeScheduler) RequestAnimationFrame(f func(time.Time)) int {
	s.next++
	s.frames[s.next] = f
	return s.next
}

func (s *fakeScheduler) CancelAnimationFrame(id int) { delete(s.frames, id) }

// RunFrame runs the callbacks pending before the call.
func (s *fakeScheduler) RunFrame(now time.Time) {
	frames := s.frames
	s.frames = map[int]func(time.Time){}
	ids := make([]int, 0, len(frames))
	for id := range frames {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		frames[id](now)
	}
}

type testEnv struct {
	g     *Grapher
	host  *fakeHost
	plane *fakePlane
	ctx   *gpufake.Context
	clock *fakeClock
	sched *fakeScheduler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, gpufake.NewContext())
}

// newTestEnvWith returns a grapher drawing on ctx, with an 800×600 layout.
func newTestEnvWith(t *testing.T, ctx *gpufake.Context) *testEnv {
	t.Helper()
	logx.SetLogger(nil)
	env := &testEnv{
		host:  &fakeHost{layout: plane.Screen{Width: 800, Height: 600}, selected: map[string]bool{}},
		plane: &fakePlane{},
		ctx:   ctx,
		clock: newFakeClock(),
		sched: newFakeScheduler(),
	}
	g, err := NewGrapher(Options{
		Context:   env.ctx,
		Canvas:    &gpufake.Canvas{},
		Host:      env.host,
		Plane:     env.plane,
		Clock:     env.clock,
		Scheduler: env.sched,
	})
	require.NoError(t, err)
	env.g = g
	return env
}

// programID returns the fake id of a program of the grapher.
func programID(t *testing.T, env *testEnv, name string) int {
	t.Helper()
	progs := env.g.Surface().Programs
	for _, p := range progs.All() {
		if p.Name == name {
			return gpufake.ID(p.ID.Object)
		}
	}
	t.Fatalf("no program %q", name)
	return 0
}

// drawCounts returns the index counts drawn with the given program.
func drawCounts(env *testEnv, program int) []int {
	var counts []int
	for _, d := range env.ctx.Draws {
		if d.Program == program {
			counts = append(counts, d.Count)
		}
	}
	return counts
}
