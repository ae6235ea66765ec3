// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/grapher3d/colors"
	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/logx"
)

// Surface owns the GPU context of the grapher: the canvas size, the
// background clear and the shader programs, and binds the camera and
// light uniforms for each draw.
type Surface struct {
	ctx         gpu.Context
	canvas      gpu.Canvas
	host        Host
	orientation *Orientation

	// Programs are the shader programs; any of them may be nil.
	Programs *gpu.Programs

	// Lighting shades the triangles program.
	Lighting Lighting

	width, height int
	pixelRatio    float64
	background    string

	showBox, showAxes, showPlane bool
}

// NewSurface sets up the fixed GL state on ctx and builds the shader
// programs. It returns [gpu.ErrNoContext] if ctx is nil.
func NewSurface(ctx gpu.Context, canvas gpu.Canvas, orientation *Orientation, host Host, cfg *config.Config) (*Surface, error) {
	if ctx == nil {
		logx.Logger().Error("xyz.NewSurface", "err", gpu.ErrNoContext)
		return nil, gpu.ErrNoContext
	}
	cfg = config.OrDefault(cfg)
	sf := &Surface{
		ctx:         ctx,
		canvas:      canvas,
		host:        host,
		orientation: orientation,
		Lighting:    NewLighting(cfg.Lighting),
	}
	ctx.Enable(gpu.Blend)
	ctx.BlendFunc(gpu.SrcAlpha, gpu.OneMinusSrcAlpha)
	ctx.Enable(gpu.DepthTest)
	ctx.DepthFunc(gpu.Lequal)
	ctx.ClearDepth(1)
	sf.SetBackgroundColor(cfg.Rendering.BackgroundColor)
	sf.Programs = gpu.NewPrograms(ctx)
	logx.Logger().Debug("xyz.NewSurface: context ready", "legacy", ctx.Legacy())
	return sf, nil
}

// Context returns the GPU context.
func (sf *Surface) Context() gpu.Context { return sf.ctx }

// LegacyMode reports whether the context is the legacy (WebGL1) one.
func (sf *Surface) LegacyMode() bool { return sf.ctx.Legacy() }

// Size returns the size in CSS pixels and the device pixel ratio.
func (sf *Surface) Size() (width, height int, pixelRatio float64) {
	return sf.width, sf.height, sf.pixelRatio
}

// Resize sets the canvas to width×height CSS pixels at pixelRatio
// device pixels each, or the canvas ratio if pixelRatio is 0. It
// updates the GL viewport and the camera aspect and requests a redraw,
// unless nothing changed.
func (sf *Surface) Resize(width, height int, pixelRatio float64) {
	if pixelRatio <= 0 {
		pixelRatio = 1
		if sf.canvas != nil {
			if r := sf.canvas.DevicePixelRatio(); r > 0 {
				pixelRatio = r
			}
		}
	}
	if width == sf.width && height == sf.height && pixelRatio == sf.pixelRatio {
		return
	}
	sf.width, sf.height, sf.pixelRatio = width, height, pixelRatio
	pw, ph := int(float64(width)*pixelRatio), int(float64(height)*pixelRatio)
	if sf.canvas != nil {
		sf.canvas.SetSize(width, height, pw, ph)
	}
	sf.ctx.Viewport(0, 0, pw, ph)
	sf.orientation.UpdateProjection(pw, ph)
	logx.Logger().Debug("xyz.Surface.Resize", slog.Int("width", width), slog.Int("height", height), slog.Float64("pixelRatio", pixelRatio))
	sf.host.RequestRedrawGraph()
}

// BeginRedraw clears the color and depth buffers.
func (sf *Surface) BeginRedraw() {
	sf.ctx.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)
}

// SetProgram makes pr current and sets every uniform it uses:
// the camera matrices, the light, the resolution and, when tex is
// not nil, the texture on unit 0. It returns false if pr is nil.
func (sf *Surface) SetProgram(pr *gpu.Program, tex *gpu.ImageTexture) bool {
	if pr == nil {
		return false
	}
	pr.Use()
	sf.ctx.UniformMatrix4fv(pr.Uniform(gpu.UniformModelView), sf.orientation.ModelView())
	sf.ctx.UniformMatrix4fv(pr.Uniform(gpu.UniformProjection), sf.orientation.Projection())
	sf.Lighting.Apply(sf.ctx, pr)
	sf.ctx.Uniform2f(pr.Uniform(gpu.UniformResolution), float32(sf.width), float32(sf.height))
	if tex != nil {
		tex.Bind(0)
		sf.ctx.Uniform1i(pr.Uniform(gpu.UniformTexture), 0)
	}
	return true
}

// SetBackgroundColor sets the clear color from a hex string and
// requests a redraw, unless the color is unchanged.
func (sf *Surface) SetBackgroundColor(hex string) {
	if hex == "" {
		hex = "#ffffff"
	}
	if hex == sf.background {
		return
	}
	sf.background = hex
	c := colors.RGB(hex)
	sf.ctx.ClearColor(c[0], c[1], c[2], 1)
	sf.host.RequestRedrawGraph()
}

// BackgroundColor returns the current background hex string.
func (sf *Surface) BackgroundColor() string { return sf.background }

func (sf *Surface) ShowBox(show bool) { sf.showBox = show }
func (sf *Surface) ShowAxes(show bool) { sf.showAxes = show }
func (sf *Surface) ShowPlane(show bool) { sf.showPlane = show }
func (sf *Surface) IsShowBox() bool { return sf.showBox }
func (sf *Surface) IsShowAxes() bool { return sf.showAxes }
func (sf *Surface) IsShowPlane() bool { return sf.showPlane }

// Release deletes the shader programs.
func (sf *Surface) Release() {
	if sf.Programs != nil {
		sf.Programs.Release()
	}
}
