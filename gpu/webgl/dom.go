// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package webgl

import (
	"strconv"
	"syscall/js"
	"time"

	"cogentcore.org/grapher3d/events"
	"cogentcore.org/grapher3d/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Canvas is a <canvas> element.
type Canvas struct {
	js.Value
}

var _ gpu.Canvas = Canvas{}

// SetSize sets the CSS size and the backing store size.
func (cv Canvas) SetSize(cssWidth, cssHeight, pixelWidth, pixelHeight int) {
	style := cv.Get("style")
	style.Set("width", strconv.Itoa(cssWidth)+"px")
	style.Set("height", strconv.Itoa(cssHeight)+"px")
	cv.Call("setAttribute", "width", pixelWidth)
	cv.Call("setAttribute", "height", pixelHeight)
}

// DevicePixelRatio returns window.devicePixelRatio, or 1.
func (cv Canvas) DevicePixelRatio() float64 {
	r := js.Global().Get("devicePixelRatio")
	if r.Type() != js.TypeNumber || r.Float() <= 0 {
		return 1
	}
	return r.Float()
}

// Clock runs timers on the browser event loop with setTimeout,
// so callbacks never interleave with event handlers.
type Clock struct{}

// Now returns the current time.
func (Clock) Now() time.Time { return time.Now() }

// AfterFunc calls f after d on the event loop.
func (Clock) AfterFunc(d time.Duration, f func()) interface{ Stop() bool } {
	t := &timeout{}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		t.done = true
		t.fn.Release()
		f()
		return nil
	})
	t.id = js.Global().Call("setTimeout", t.fn, d.Milliseconds())
	return t
}

type timeout struct {
	id   js.Value
	fn   js.Func
	done bool
}

func (t *timeout) Stop() bool {
	if t.done {
		return false
	}
	js.Global().Call("clearTimeout", t.id)
	t.fn.Release()
	t.done = true
	return true
}

// Scheduler runs animation frames with requestAnimationFrame.
type Scheduler struct {
	frames map[int]js.Func
}

// RequestAnimationFrame schedules fn for the next frame.
func (s *Scheduler) RequestAnimationFrame(fn func(now time.Time)) int {
	if s.frames == nil {
		s.frames = map[int]js.Func{}
	}
	var id int
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		if f, ok := s.frames[id]; ok {
			delete(s.frames, id)
			f.Release()
		}
		fn(time.Now())
		return nil
	})
	id = js.Global().Call("requestAnimationFrame", cb).Int()
	s.frames[id] = cb
	return id
}

// CancelAnimationFrame cancels a frame requested with [Scheduler.RequestAnimationFrame].
func (s *Scheduler) CancelAnimationFrame(id int) {
	f, ok := s.frames[id]
	if !ok {
		return
	}
	js.Global().Call("cancelAnimationFrame", id)
	delete(s.frames, id)
	f.Release()
}

// BindEvents translates DOM events on the canvas and its window into
// [events.Event] values passed to send. The mouse is reported as a
// single touch. It returns a function that removes every listener.
func BindEvents(canvas js.Value, send func(events.Event)) (unbind func()) {
	window := js.Global()
	var funcs []func()
	listen := func(target js.Value, name string, passive bool, fn func(ev js.Value)) {
		f := js.FuncOf(func(_ js.Value, args []js.Value) any {
			fn(args[0])
			return nil
		})
		opts := map[string]any{"passive": passive}
		target.Call("addEventListener", name, f, opts)
		funcs = append(funcs, func() {
			target.Call("removeEventListener", name, f, opts)
			f.Release()
		})
	}
	local := func(ev js.Value) mgl32.Vec2 {
		rect := canvas.Call("getBoundingClientRect")
		return mgl32.Vec2{
			float32(ev.Get("clientX").Float() - rect.Get("left").Float()),
			float32(ev.Get("clientY").Float() - rect.Get("top").Float()),
		}
	}
	touches := func(list js.Value) []mgl32.Vec2 {
		n := list.Get("length").Int()
		out := make([]mgl32.Vec2, n)
		for i := range n {
			out[i] = local(list.Index(i))
		}
		return out
	}

	mouseDown := false
	listen(canvas, "mousedown", true, func(ev js.Value) {
		if ev.Get("button").Int() != 0 {
			return
		}
		mouseDown = true
		send(events.NewTouch(events.TouchStart, []mgl32.Vec2{local(ev)}, 1))
	})
	listen(window, "mousemove", true, func(ev js.Value) {
		p := local(ev)
		send(events.NewMouseMove(p))
		if mouseDown {
			send(events.NewTouch(events.TouchMove, []mgl32.Vec2{p}, 1))
		}
	})
	listen(window, "mouseup", true, func(ev js.Value) {
		if !mouseDown {
			return
		}
		mouseDown = false
		send(events.NewTouch(events.TouchEnd, nil, 1))
	})
	for name, typ := range map[string]events.Types{
		"touchstart":  events.TouchStart,
		"touchmove":   events.TouchMove,
		"touchend":    events.TouchEnd,
		"touchcancel": events.TouchCancel,
	} {
		listen(canvas, name, false, func(ev js.Value) {
			ev.Call("preventDefault")
			send(events.NewTouch(typ, touches(ev.Get("touches")), ev.Get("changedTouches").Get("length").Int()))
		})
	}
	listen(canvas, "wheel", false, func(ev js.Value) {
		ev.Call("preventDefault")
		delta := mgl32.Vec2{float32(ev.Get("deltaX").Float()), float32(ev.Get("deltaY").Float())}
		send(events.NewWheel(local(ev), delta))
	})
	listen(window, "wheel", true, func(ev js.Value) {
		send(events.NewWindowWheel(local(ev), mgl32.Vec2{}))
	})
	listen(window, "scroll", true, func(js.Value) { send(events.NewBase(events.Scroll)) })
	listen(window, "keyup", true, func(js.Value) { send(events.NewBase(events.KeyUp)) })
	listen(window, "blur", true, func(js.Value) { send(events.NewBase(events.Blur)) })

	return func() {
		for _, f := range funcs {
			f()
		}
	}
}
