// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"fmt"
	"runtime"

	"cogentcore.org/grapher3d/events"
	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/logx"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// ScrollLinePixels converts glfw scroll offsets, which are in lines,
// into the pixel deltas that browsers report.
var ScrollLinePixels float32 = 100

func init() {
	// glfw and GL calls must stay on the main thread
	runtime.LockOSThread()
}

// Window is a glfw window with a current OpenGL 3.3 core context.
type Window struct {
	*glfw.Window

	// Context renders into the window.
	Context *Context
}

var _ gpu.Canvas = (*Window)(nil)

// NewWindow initializes glfw, opens a window with the given title
// and size in screen coordinates and makes its context current.
// Call [Window.Terminate] when done.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", gpu.ErrNoContext, err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)
	ctx, err := NewContext()
	if err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", gpu.ErrNoContext, err)
	}
	logx.Logger().Debug("desktop: window created", "title", title, "glsl", ctx.GetString(gpu.ShadingLanguageVersion))
	return &Window{Window: w, Context: ctx}, nil
}

// SetSize resizes the window to the CSS size, in screen coordinates.
// The framebuffer size follows from the monitor scale.
func (w *Window) SetSize(cssWidth, cssHeight, pixelWidth, pixelHeight int) {
	if cw, ch := w.GetSize(); cw != cssWidth || ch != cssHeight {
		w.Window.SetSize(cssWidth, cssHeight)
	}
}

// DevicePixelRatio is the framebuffer width over the window width.
func (w *Window) DevicePixelRatio() float64 {
	ww, _ := w.GetSize()
	fw, _ := w.GetFramebufferSize()
	if ww == 0 || fw == 0 {
		return 1
	}
	return float64(fw) / float64(ww)
}

// Terminate releases the context, the window and glfw.
func (w *Window) Terminate() {
	w.Context.Release()
	w.Destroy()
	glfw.Terminate()
}

// BindEvents installs glfw callbacks that translate window input into
// [events.Event] values passed to send. The left mouse button is
// reported as a single touch. Events are delivered from
// [glfw.PollEvents], on the main thread.
func (w *Window) BindEvents(send func(events.Event)) {
	down := false
	cursor := func() mgl32.Vec2 {
		x, y := w.GetCursorPos()
		return mgl32.Vec2{float32(x), float32(y)}
	}
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		p := mgl32.Vec2{float32(x), float32(y)}
		send(events.NewMouseMove(p))
		if down {
			send(events.NewTouch(events.TouchMove, []mgl32.Vec2{p}, 1))
		}
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch {
		case action == glfw.Press && !down:
			down = true
			send(events.NewTouch(events.TouchStart, []mgl32.Vec2{cursor()}, 1))
		case action == glfw.Release && down:
			down = false
			send(events.NewTouch(events.TouchEnd, nil, 1))
		}
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		p := cursor()
		send(events.NewWindowWheel(p, mgl32.Vec2{}))
		send(events.NewWheel(p, mgl32.Vec2{-float32(xoff) * ScrollLinePixels, -float32(yoff) * ScrollLinePixels}))
	})
	w.SetKeyCallback(func(_ *glfw.Window, _ glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			send(events.NewBase(events.KeyDown))
		case glfw.Release:
			send(events.NewBase(events.KeyUp))
		}
	})
	w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			send(events.NewBase(events.Blur))
		}
	})
}
