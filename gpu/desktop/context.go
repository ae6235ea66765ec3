// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package desktop implements [gpu.Context] on OpenGL 3.3 core in a
// glfw window, for running the grapher outside the browser.
package desktop

import (
	"image"
	"strings"
	"unsafe"

	"cogentcore.org/grapher3d/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Context is an OpenGL 3.3 core context. It must only be used on the
// thread that made the window current.
type Context struct {
	vao uint32
}

var _ gpu.Context = (*Context)(nil)

// NewContext loads the GL functions for the current context and binds
// the vertex array object that core profile requires.
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c, nil
}

func object(id uint32) gpu.Object {
	if id == 0 {
		return gpu.Object{}
	}
	return gpu.NewObject(id)
}

func name(o gpu.Object) uint32 {
	if o.IsNil() {
		return 0
	}
	return o.Value().(uint32)
}

func location(u gpu.UniformLoc) int32 {
	if u.IsNil() {
		return -1
	}
	return u.Value().(int32)
}

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func (c *Context) Legacy() bool { return false }

func (c *Context) GetString(pname gpu.Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

func (c *Context) Enable(cap gpu.Enum) { gl.Enable(uint32(cap)) }
func (c *Context) BlendFunc(s, d gpu.Enum) { gl.BlendFunc(uint32(s), uint32(d)) }
func (c *Context) DepthFunc(fn gpu.Enum) { gl.DepthFunc(uint32(fn)) }
func (c *Context) ClearDepth(depth float32) { gl.ClearDepth(float64(depth)) }
func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (c *Context) Clear(mask gpu.Enum) { gl.Clear(uint32(mask)) }

func (c *Context) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (c *Context) CreateShader(typ gpu.Enum) gpu.ShaderID {
	return gpu.ShaderID{Object: object(gl.CreateShader(uint32(typ)))}
}

func (c *Context) ShaderSource(sh gpu.ShaderID, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(name(sh.Object), 1, csrc, nil)
}

func (c *Context) CompileShader(sh gpu.ShaderID) { gl.CompileShader(name(sh.Object)) }

func (c *Context) ShaderCompiled(sh gpu.ShaderID) bool {
	var status int32
	gl.GetShaderiv(name(sh.Object), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(sh gpu.ShaderID) string {
	var n int32
	gl.GetShaderiv(name(sh.Object), gl.INFO_LOG_LENGTH, &n)
	log := strings.Repeat("\x00", int(n)+1)
	gl.GetShaderInfoLog(name(sh.Object), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(sh gpu.ShaderID) { gl.DeleteShader(name(sh.Object)) }

func (c *Context) CreateProgram() gpu.ProgramID {
	return gpu.ProgramID{Object: object(gl.CreateProgram())}
}

func (c *Context) AttachShader(p gpu.ProgramID, sh gpu.ShaderID) {
	gl.AttachShader(name(p.Object), name(sh.Object))
}

func (c *Context) BindAttribLocation(p gpu.ProgramID, index int, attr string) {
	gl.BindAttribLocation(name(p.Object), uint32(index), cstr(attr))
}

func (c *Context) LinkProgram(p gpu.ProgramID) { gl.LinkProgram(name(p.Object)) }

func (c *Context) ProgramLinked(p gpu.ProgramID) bool {
	var status int32
	gl.GetProgramiv(name(p.Object), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(p gpu.ProgramID) string {
	var n int32
	gl.GetProgramiv(name(p.Object), gl.INFO_LOG_LENGTH, &n)
	log := strings.Repeat("\x00", int(n)+1)
	gl.GetProgramInfoLog(name(p.Object), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) UseProgram(p gpu.ProgramID) { gl.UseProgram(name(p.Object)) }
func (c *Context) DeleteProgram(p gpu.ProgramID) { gl.DeleteProgram(name(p.Object)) }

func (c *Context) GetAttribLocation(p gpu.ProgramID, attr string) int {
	return int(gl.GetAttribLocation(name(p.Object), cstr(attr)))
}

func (c *Context) GetUniformLocation(p gpu.ProgramID, uniform string) gpu.UniformLoc {
	loc := gl.GetUniformLocation(name(p.Object), cstr(uniform))
	if loc < 0 {
		return gpu.UniformLoc{}
	}
	return gpu.UniformLoc{Object: gpu.NewObject(loc)}
}

func (c *Context) UniformMatrix4fv(u gpu.UniformLoc, m [16]float32) {
	gl.UniformMatrix4fv(location(u), 1, false, &m[0])
}

func (c *Context) Uniform1f(u gpu.UniformLoc, v float32) { gl.Uniform1f(location(u), v) }

func (c *Context) Uniform2f(u gpu.UniformLoc, v0, v1 float32) {
	gl.Uniform2f(location(u), v0, v1)
}

func (c *Context) Uniform3f(u gpu.UniformLoc, v0, v1, v2 float32) {
	gl.Uniform3f(location(u), v0, v1, v2)
}

func (c *Context) Uniform1i(u gpu.UniformLoc, v int) { gl.Uniform1i(location(u), int32(v)) }

func (c *Context) CreateBuffer() gpu.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return gpu.BufferID{Object: object(id)}
}

func (c *Context) BindBuffer(target gpu.Enum, b gpu.BufferID) {
	gl.BindBuffer(uint32(target), name(b.Object))
}

func (c *Context) BufferDataFloat32(target gpu.Enum, data []float32, usage gpu.Enum) {
	gl.BufferData(uint32(target), len(data)*4, unsafe.Pointer(unsafe.SliceData(data)), uint32(usage))
}

func (c *Context) BufferDataUint32(target gpu.Enum, data []uint32, usage gpu.Enum) {
	gl.BufferData(uint32(target), len(data)*4, unsafe.Pointer(unsafe.SliceData(data)), uint32(usage))
}

func (c *Context) DeleteBuffer(b gpu.BufferID) {
	id := name(b.Object)
	gl.DeleteBuffers(1, &id)
}

func (c *Context) VertexAttribPointer(index, size int, typ gpu.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(index), int32(size), uint32(typ), normalized, int32(stride), uintptr(offset))
}

func (c *Context) EnableVertexAttribArray(index int) { gl.EnableVertexAttribArray(uint32(index)) }

func (c *Context) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), int32(count), uint32(typ), uintptr(offset))
}

func (c *Context) CreateTexture() gpu.TextureID {
	var id uint32
	gl.GenTextures(1, &id)
	return gpu.TextureID{Object: object(id)}
}

func (c *Context) ActiveTexture(unit gpu.Enum) { gl.ActiveTexture(uint32(unit)) }

func (c *Context) BindTexture(target gpu.Enum, t gpu.TextureID) {
	gl.BindTexture(uint32(target), name(t.Object))
}

func (c *Context) TexImage2D(target gpu.Enum, img *image.RGBA) {
	sz := img.Bounds().Size()
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(uint32(target), 0, gl.RGBA, int32(sz.X), int32(sz.Y), 0, uint32(gpu.RGBA), uint32(gpu.UnsignedByte), unsafe.Pointer(unsafe.SliceData(img.Pix)))
}

func (c *Context) TexParameteri(target, pname, param gpu.Enum) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (c *Context) GenerateMipmap(target gpu.Enum) { gl.GenerateMipmap(uint32(target)) }

func (c *Context) DeleteTexture(t gpu.TextureID) {
	id := name(t.Object)
	gl.DeleteTextures(1, &id)
}

// Release deletes the vertex array object.
func (c *Context) Release() {
	gl.DeleteVertexArrays(1, &c.vao)
}
