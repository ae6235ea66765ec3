// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

// Package webgl implements [gpu.Context] on a browser canvas, using
// WebGL 2 when available and WebGL 1 otherwise.
package webgl

import (
	"image"
	"syscall/js"
	"unsafe"

	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/logx"
)

// Context is a WebGL rendering context.
type Context struct {
	gl     js.Value
	legacy bool
}

var _ gpu.Context = (*Context)(nil)

// NewContext gets a rendering context for the canvas element, trying
// WebGL 2 first and falling back to WebGL 1. It returns
// [gpu.ErrNoContext] when neither is available.
func NewContext(canvas js.Value) (*Context, error) {
	opts := map[string]any{
		"alpha":          false,
		"depth":          true,
		"desynchronized": true,
		"antialias":      true,
	}
	c := &Context{}
	c.gl = canvas.Call("getContext", "webgl2", opts)
	if isNull(c.gl) {
		c.legacy = true
		c.gl = canvas.Call("getContext", "webgl", opts)
	}
	if isNull(c.gl) {
		return nil, gpu.ErrNoContext
	}
	if c.legacy {
		// 32-bit indices are core in WebGL 2 but an extension in WebGL 1
		if isNull(c.gl.Call("getExtension", "OES_element_index_uint")) {
			logx.Logger().Warn("webgl: OES_element_index_uint is not available; large geometry will not draw")
		}
	}
	logx.Logger().Debug("webgl: context created", "legacy", c.legacy)
	return c, nil
}

// JSValue returns the underlying WebGLRenderingContext.
func (c *Context) JSValue() js.Value { return c.gl }

func isNull(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

func object(v js.Value) gpu.Object {
	if isNull(v) {
		return gpu.Object{}
	}
	return gpu.NewObject(v)
}

func value(o gpu.Object) js.Value {
	if o.IsNil() {
		return js.Null()
	}
	return o.Value().(js.Value)
}

func float32Array(data []float32) js.Value {
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*4)
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"), 0, len(data))
}

func uint32Array(data []uint32) js.Value {
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*4)
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Uint32Array").New(u8.Get("buffer"), 0, len(data))
}

func (c *Context) Legacy() bool { return c.legacy }

func (c *Context) GetString(name gpu.Enum) string {
	v := c.gl.Call("getParameter", int(name))
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (c *Context) Enable(cap gpu.Enum) { c.gl.Call("enable", int(cap)) }
func (c *Context) BlendFunc(s, d gpu.Enum) { c.gl.Call("blendFunc", int(s), int(d)) }
func (c *Context) DepthFunc(fn gpu.Enum) { c.gl.Call("depthFunc", int(fn)) }
func (c *Context) ClearDepth(depth float32) { c.gl.Call("clearDepth", depth) }
func (c *Context) ClearColor(r, g, b, a float32) { c.gl.Call("clearColor", r, g, b, a) }
func (c *Context) Clear(mask gpu.Enum) { c.gl.Call("clear", int(mask)) }
func (c *Context) Viewport(x, y, w, h int) { c.gl.Call("viewport", x, y, w, h) }

func (c *Context) CreateShader(typ gpu.Enum) gpu.ShaderID {
	return gpu.ShaderID{Object: object(c.gl.Call("createShader", int(typ)))}
}

func (c *Context) ShaderSource(sh gpu.ShaderID, src string) {
	c.gl.Call("shaderSource", value(sh.Object), src)
}

func (c *Context) CompileShader(sh gpu.ShaderID) { c.gl.Call("compileShader", value(sh.Object)) }

func (c *Context) ShaderCompiled(sh gpu.ShaderID) bool {
	return c.gl.Call("getShaderParameter", value(sh.Object), c.gl.Get("COMPILE_STATUS")).Truthy()
}

func (c *Context) ShaderInfoLog(sh gpu.ShaderID) string {
	return c.gl.Call("getShaderInfoLog", value(sh.Object)).String()
}

func (c *Context) DeleteShader(sh gpu.ShaderID) { c.gl.Call("deleteShader", value(sh.Object)) }

func (c *Context) CreateProgram() gpu.ProgramID {
	return gpu.ProgramID{Object: object(c.gl.Call("createProgram"))}
}

func (c *Context) AttachShader(p gpu.ProgramID, sh gpu.ShaderID) {
	c.gl.Call("attachShader", value(p.Object), value(sh.Object))
}

func (c *Context) BindAttribLocation(p gpu.ProgramID, index int, name string) {
	c.gl.Call("bindAttribLocation", value(p.Object), index, name)
}

func (c *Context) LinkProgram(p gpu.ProgramID) { c.gl.Call("linkProgram", value(p.Object)) }

func (c *Context) ProgramLinked(p gpu.ProgramID) bool {
	return c.gl.Call("getProgramParameter", value(p.Object), c.gl.Get("LINK_STATUS")).Truthy()
}

func (c *Context) ProgramInfoLog(p gpu.ProgramID) string {
	return c.gl.Call("getProgramInfoLog", value(p.Object)).String()
}

func (c *Context) UseProgram(p gpu.ProgramID) { c.gl.Call("useProgram", value(p.Object)) }
func (c *Context) DeleteProgram(p gpu.ProgramID) { c.gl.Call("deleteProgram", value(p.Object)) }

func (c *Context) GetAttribLocation(p gpu.ProgramID, name string) int {
	return c.gl.Call("getAttribLocation", value(p.Object), name).Int()
}

func (c *Context) GetUniformLocation(p gpu.ProgramID, name string) gpu.UniformLoc {
	return gpu.UniformLoc{Object: object(c.gl.Call("getUniformLocation", value(p.Object), name))}
}

func (c *Context) UniformMatrix4fv(u gpu.UniformLoc, m [16]float32) {
	if u.IsNil() {
		return
	}
	c.gl.Call("uniformMatrix4fv", value(u.Object), false, float32Array(m[:]))
}

func (c *Context) Uniform1f(u gpu.UniformLoc, v float32) {
	if !u.IsNil() {
		c.gl.Call("uniform1f", value(u.Object), v)
	}
}

func (c *Context) Uniform2f(u gpu.UniformLoc, v0, v1 float32) {
	if !u.IsNil() {
		c.gl.Call("uniform2f", value(u.Object), v0, v1)
	}
}

func (c *Context) Uniform3f(u gpu.UniformLoc, v0, v1, v2 float32) {
	if !u.IsNil() {
		c.gl.Call("uniform3f", value(u.Object), v0, v1, v2)
	}
}

func (c *Context) Uniform1i(u gpu.UniformLoc, v int) {
	if !u.IsNil() {
		c.gl.Call("uniform1i", value(u.Object), v)
	}
}

func (c *Context) CreateBuffer() gpu.BufferID {
	return gpu.BufferID{Object: object(c.gl.Call("createBuffer"))}
}

func (c *Context) BindBuffer(target gpu.Enum, b gpu.BufferID) {
	c.gl.Call("bindBuffer", int(target), value(b.Object))
}

func (c *Context) BufferDataFloat32(target gpu.Enum, data []float32, usage gpu.Enum) {
	c.gl.Call("bufferData", int(target), float32Array(data), int(usage))
}

func (c *Context) BufferDataUint32(target gpu.Enum, data []uint32, usage gpu.Enum) {
	c.gl.Call("bufferData", int(target), uint32Array(data), int(usage))
}

func (c *Context) DeleteBuffer(b gpu.BufferID) { c.gl.Call("deleteBuffer", value(b.Object)) }

func (c *Context) VertexAttribPointer(index, size int, typ gpu.Enum, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", index, size, int(typ), normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(index int) { c.gl.Call("enableVertexAttribArray", index) }

func (c *Context) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	c.gl.Call("drawElements", int(mode), count, int(typ), offset)
}

func (c *Context) CreateTexture() gpu.TextureID {
	return gpu.TextureID{Object: object(c.gl.Call("createTexture"))}
}

func (c *Context) ActiveTexture(unit gpu.Enum) { c.gl.Call("activeTexture", int(unit)) }

func (c *Context) BindTexture(target gpu.Enum, t gpu.TextureID) {
	c.gl.Call("bindTexture", int(target), value(t.Object))
}

func (c *Context) TexImage2D(target gpu.Enum, img *image.RGBA) {
	sz := img.Bounds().Size()
	pix := js.Global().Get("Uint8Array").New(len(img.Pix))
	js.CopyBytesToJS(pix, img.Pix)
	c.gl.Call("texImage2D", int(target), 0, int(gpu.RGBA), sz.X, sz.Y, 0, int(gpu.RGBA), int(gpu.UnsignedByte), pix)
}

func (c *Context) TexParameteri(target, pname, param gpu.Enum) {
	c.gl.Call("texParameteri", int(target), int(pname), int(param))
}

func (c *Context) GenerateMipmap(target gpu.Enum) { c.gl.Call("generateMipmap", int(target)) }

func (c *Context) DeleteTexture(t gpu.TextureID) { c.gl.Call("deleteTexture", value(t.Object)) }
