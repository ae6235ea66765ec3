// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpufake provides a [gpu.Context] that records calls instead
// of drawing, for testing rendering code without a GPU.
package gpufake

import (
	"image"
	"slices"

	"cogentcore.org/grapher3d/gpu"
)

// Draw is a recorded DrawElements call.
type Draw struct {

	// Program is the program in use.
	Program int

	// Count is the number of indices drawn.
	Count int

	// Texture is the texture bound to unit 0, or 0.
	Texture int
}

// Context records GL calls. Objects are numbered from 1 in creation
// order. Set the exported options before handing it to the code
// under test.
type Context struct {

	// Version is returned for ShadingLanguageVersion.
	Version string

	// IsLegacy is returned by Legacy.
	IsLegacy bool

	// FailCompile makes every shader of this type fail to compile
	// when nonzero.
	FailCompile gpu.Enum

	// FailLink makes every program fail to link.
	FailLink bool

	// Calls is the name of every call, in order.
	Calls []string

	// Enabled holds the capabilities passed to Enable.
	Enabled []gpu.Enum

	ClearColorValue [4]float32
	ViewportValue   [4]int
	BlendValue      [2]gpu.Enum
	DepthFuncValue  gpu.Enum

	// Sources maps shader ids to their final source.
	Sources map[int]string

	// Uniforms maps uniform names to the last value set, per program.
	Uniforms map[int]map[string]any

	// Buffers holds the last data uploaded to each buffer,
	// []float32 or []uint32.
	Buffers map[int]any

	// Textures holds the size of the last image uploaded to each texture.
	Textures map[int]image.Point

	// TexParams holds the last value of each texture parameter.
	TexParams map[gpu.Enum]gpu.Enum

	// Mipmaps counts GenerateMipmap calls.
	Mipmaps int

	// Draws records every DrawElements call.
	Draws []Draw

	// Deleted lists deleted object ids.
	Deleted []int

	next       int
	program    int
	texture    int
	bound      map[gpu.Enum]int
	attribs    map[int]map[string]int
	uniformIDs map[int]string
	uniformOf  map[int]int
	shaderType map[int]gpu.Enum
	linkFailed map[int]bool
}

// NewContext returns a WebGL 2 style context.
func NewContext() *Context {
	return &Context{
		Version:    "WebGL GLSL ES 3.00 (fake)",
		Sources:    map[int]string{},
		Uniforms:   map[int]map[string]any{},
		Buffers:    map[int]any{},
		Textures:   map[int]image.Point{},
		TexParams:  map[gpu.Enum]gpu.Enum{},
		bound:      map[gpu.Enum]int{},
		attribs:    map[int]map[string]int{},
		uniformIDs: map[int]string{},
		uniformOf:  map[int]int{},
		shaderType: map[int]gpu.Enum{},
		linkFailed: map[int]bool{},
	}
}

// NewLegacyContext returns a WebGL 1 style context.
func NewLegacyContext() *Context {
	c := NewContext()
	c.Version = "WebGL GLSL ES 1.0 (fake)"
	c.IsLegacy = true
	return c
}

var _ gpu.Context = (*Context)(nil)

func (c *Context) call(name string) { c.Calls = append(c.Calls, name) }

func (c *Context) newID() int {
	c.next++
	return c.next
}

// ID returns the fake id of an object handle, or 0 for the null object.
func ID(o gpu.Object) int {
	if o.IsNil() {
		return 0
	}
	return o.Value().(int)
}

func obj(id int) gpu.Object { return gpu.NewObject(id) }

// Count returns how many times the named call was made.
func (c *Context) Count(name string) int {
	n := 0
	for _, cl := range c.Calls {
		if cl == name {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls and draws, keeping object state.
func (c *Context) Reset() {
	c.Calls = nil
	c.Draws = nil
}

// IsEnabled reports whether Enable was called with cap.
func (c *Context) IsEnabled(cap gpu.Enum) bool {
	return slices.Contains(c.Enabled, cap)
}

// Uniform returns the last value set for the named uniform of the
// program with the given id.
func (c *Context) Uniform(program int, name string) any {
	return c.Uniforms[program][name]
}

func (c *Context) Legacy() bool { return c.IsLegacy }

func (c *Context) GetString(name gpu.Enum) string {
	if name == gpu.ShadingLanguageVersion {
		return c.Version
	}
	return ""
}

func (c *Context) Enable(cap gpu.Enum) {
	c.call("Enable")
	c.Enabled = append(c.Enabled, cap)
}

func (c *Context) BlendFunc(s, d gpu.Enum) {
	c.call("BlendFunc")
	c.BlendValue = [2]gpu.Enum{s, d}
}

func (c *Context) DepthFunc(fn gpu.Enum) {
	c.call("DepthFunc")
	c.DepthFuncValue = fn
}

func (c *Context) ClearDepth(float32) { c.call("ClearDepth") }

func (c *Context) ClearColor(r, g, b, a float32) {
	c.call("ClearColor")
	c.ClearColorValue = [4]float32{r, g, b, a}
}

func (c *Context) Clear(gpu.Enum) { c.call("Clear") }

func (c *Context) Viewport(x, y, w, h int) {
	c.call("Viewport")
	c.ViewportValue = [4]int{x, y, w, h}
}

func (c *Context) CreateShader(typ gpu.Enum) gpu.ShaderID {
	c.call("CreateShader")
	id := c.newID()
	c.shaderType[id] = typ
	return gpu.ShaderID{Object: obj(id)}
}

func (c *Context) ShaderSource(sh gpu.ShaderID, src string) { c.Sources[ID(sh.Object)] = src }
func (c *Context) CompileShader(gpu.ShaderID) { c.call("CompileShader") }

func (c *Context) ShaderCompiled(sh gpu.ShaderID) bool {
	return c.FailCompile == 0 || c.shaderType[ID(sh.Object)] != c.FailCompile
}

func (c *Context) ShaderInfoLog(gpu.ShaderID) string { return "ERROR: 0:1: fake compile failure" }

func (c *Context) DeleteShader(sh gpu.ShaderID) {
	c.call("DeleteShader")
	c.Deleted = append(c.Deleted, ID(sh.Object))
}

func (c *Context) CreateProgram() gpu.ProgramID {
	c.call("CreateProgram")
	id := c.newID()
	c.attribs[id] = map[string]int{}
	c.Uniforms[id] = map[string]any{}
	return gpu.ProgramID{Object: obj(id)}
}

func (c *Context) AttachShader(gpu.ProgramID, gpu.ShaderID) { c.call("AttachShader") }

func (c *Context) BindAttribLocation(p gpu.ProgramID, index int, name string) {
	c.attribs[ID(p.Object)][name] = index
}

func (c *Context) LinkProgram(p gpu.ProgramID) {
	c.call("LinkProgram")
	c.linkFailed[ID(p.Object)] = c.FailLink
}

func (c *Context) ProgramLinked(p gpu.ProgramID) bool { return !c.linkFailed[ID(p.Object)] }
func (c *Context) ProgramInfoLog(gpu.ProgramID) string { return "fake link failure" }

func (c *Context) UseProgram(p gpu.ProgramID) {
	c.call("UseProgram")
	c.program = ID(p.Object)
}

func (c *Context) DeleteProgram(p gpu.ProgramID) {
	c.call("DeleteProgram")
	c.Deleted = append(c.Deleted, ID(p.Object))
}

// GetAttribLocation assigns increasing locations after the bound ones.
func (c *Context) GetAttribLocation(p gpu.ProgramID, name string) int {
	at := c.attribs[ID(p.Object)]
	if loc, ok := at[name]; ok {
		return loc
	}
	loc := len(at)
	if _, ok := at[gpu.PositionInput]; !ok {
		loc++
	}
	at[name] = loc
	return loc
}

func (c *Context) GetUniformLocation(p gpu.ProgramID, name string) gpu.UniformLoc {
	id := c.newID()
	c.uniformIDs[id] = name
	c.uniformOf[id] = ID(p.Object)
	return gpu.UniformLoc{Object: obj(id)}
}

func (c *Context) setUniform(u gpu.UniformLoc, v any) {
	c.call("Uniform")
	if u.IsNil() {
		return
	}
	id := ID(u.Object)
	c.Uniforms[c.uniformOf[id]][c.uniformIDs[id]] = v
}

func (c *Context) UniformMatrix4fv(u gpu.UniformLoc, m [16]float32) { c.setUniform(u, m) }
func (c *Context) Uniform1f(u gpu.UniformLoc, v float32) { c.setUniform(u, v) }
func (c *Context) Uniform2f(u gpu.UniformLoc, v0, v1 float32) { c.setUniform(u, [2]float32{v0, v1}) }
func (c *Context) Uniform3f(u gpu.UniformLoc, v0, v1, v2 float32) { c.setUniform(u, [3]float32{v0, v1, v2}) }
func (c *Context) Uniform1i(u gpu.UniformLoc, v int) { c.setUniform(u, v) }

func (c *Context) CreateBuffer() gpu.BufferID {
	c.call("CreateBuffer")
	return gpu.BufferID{Object: obj(c.newID())}
}

func (c *Context) BindBuffer(target gpu.Enum, b gpu.BufferID) { c.bound[target] = ID(b.Object) }

func (c *Context) BufferDataFloat32(target gpu.Enum, data []float32, _ gpu.Enum) {
	c.call("BufferData")
	c.Buffers[c.bound[target]] = slices.Clone(data)
}

func (c *Context) BufferDataUint32(target gpu.Enum, data []uint32, _ gpu.Enum) {
	c.call("BufferData")
	c.Buffers[c.bound[target]] = slices.Clone(data)
}

func (c *Context) DeleteBuffer(b gpu.BufferID) {
	c.call("DeleteBuffer")
	c.Deleted = append(c.Deleted, ID(b.Object))
}

func (c *Context) VertexAttribPointer(int, int, gpu.Enum, bool, int, int) {
	c.call("VertexAttribPointer")
}

func (c *Context) EnableVertexAttribArray(int) { c.call("EnableVertexAttribArray") }

func (c *Context) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	c.call("DrawElements")
	c.Draws = append(c.Draws, Draw{Program: c.program, Count: count, Texture: c.texture})
}

func (c *Context) CreateTexture() gpu.TextureID {
	c.call("CreateTexture")
	return gpu.TextureID{Object: obj(c.newID())}
}

func (c *Context) ActiveTexture(gpu.Enum) { c.call("ActiveTexture") }

func (c *Context) BindTexture(_ gpu.Enum, t gpu.TextureID) {
	c.call("BindTexture")
	c.texture = ID(t.Object)
}

func (c *Context) TexImage2D(_ gpu.Enum, img *image.RGBA) {
	c.call("TexImage2D")
	c.Textures[c.texture] = img.Bounds().Size()
}

func (c *Context) TexParameteri(_, pname, param gpu.Enum) {
	c.call("TexParameteri")
	c.TexParams[pname] = param
}

func (c *Context) GenerateMipmap(gpu.Enum) {
	c.call("GenerateMipmap")
	c.Mipmaps++
}

func (c *Context) DeleteTexture(t gpu.TextureID) {
	c.call("DeleteTexture")
	c.Deleted = append(c.Deleted, ID(t.Object))
}

// Canvas records the sizes set on it.
type Canvas struct {

	// PixelRatio is returned by DevicePixelRatio; 0 means 1.
	PixelRatio float64

	CSSWidth, CSSHeight     int
	PixelWidth, PixelHeight int

	// Sets counts SetSize calls.
	Sets int
}

var _ gpu.Canvas = (*Canvas)(nil)

func (cv *Canvas) SetSize(cssWidth, cssHeight, pixelWidth, pixelHeight int) {
	cv.CSSWidth, cv.CSSHeight = cssWidth, cssHeight
	cv.PixelWidth, cv.PixelHeight = pixelWidth, pixelHeight
	cv.Sets++
}

func (cv *Canvas) DevicePixelRatio() float64 {
	if cv.PixelRatio == 0 {
		return 1
	}
	return cv.PixelRatio
}
