// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/grapher3d/base/errors"
)

// ErrNoContext is returned when no GL context could be created.
var ErrNoContext = errors.New("gpu: unable to create a WebGL context; WebGL may not be supported")

// Context is the subset of the WebGL / OpenGL immediate-mode API that
// the grapher uses. Implementations: gpu/webgl in the browser,
// gpu/desktop on top of OpenGL 3.3 and gpu/gpufake for tests.
// A Context is bound to one thread; none of its methods may be called
// concurrently.
type Context interface {

	// Legacy reports whether only WebGL 1 (GLSL ES 1.00) is available.
	Legacy() bool

	// GetString returns a string parameter such as ShadingLanguageVersion.
	GetString(name Enum) string

	Enable(cap Enum)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	ClearDepth(depth float32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int)

	CreateShader(typ Enum) ShaderID
	ShaderSource(sh ShaderID, src string)
	CompileShader(sh ShaderID)
	// ShaderCompiled returns the COMPILE_STATUS of the shader.
	ShaderCompiled(sh ShaderID) bool
	ShaderInfoLog(sh ShaderID) string
	DeleteShader(sh ShaderID)

	CreateProgram() ProgramID
	AttachShader(p ProgramID, sh ShaderID)
	BindAttribLocation(p ProgramID, index int, name string)
	LinkProgram(p ProgramID)
	// ProgramLinked returns the LINK_STATUS of the program.
	ProgramLinked(p ProgramID) bool
	ProgramInfoLog(p ProgramID) string
	UseProgram(p ProgramID)
	DeleteProgram(p ProgramID)

	// GetAttribLocation returns -1 when the attribute is not active.
	GetAttribLocation(p ProgramID, name string) int
	// GetUniformLocation returns the null UniformLoc when the uniform is not active.
	GetUniformLocation(p ProgramID, name string) UniformLoc
	UniformMatrix4fv(u UniformLoc, m [16]float32)
	Uniform1f(u UniformLoc, v float32)
	Uniform2f(u UniformLoc, v0, v1 float32)
	Uniform3f(u UniformLoc, v0, v1, v2 float32)
	Uniform1i(u UniformLoc, v int)

	CreateBuffer() BufferID
	BindBuffer(target Enum, b BufferID)
	BufferDataFloat32(target Enum, data []float32, usage Enum)
	BufferDataUint32(target Enum, data []uint32, usage Enum)
	DeleteBuffer(b BufferID)
	VertexAttribPointer(index, size int, typ Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(index int)
	DrawElements(mode Enum, count int, typ Enum, offset int)

	CreateTexture() TextureID
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t TextureID)
	TexImage2D(target Enum, img *image.RGBA)
	TexParameteri(target, pname, param Enum)
	GenerateMipmap(target Enum)
	DeleteTexture(t TextureID)
}

// Canvas is the drawing surface a [Context] renders into.
type Canvas interface {

	// SetSize sets the CSS size and the backing-store size in device pixels.
	SetSize(cssWidth, cssHeight, pixelWidth, pixelHeight int)

	// DevicePixelRatio is the ratio of device pixels to CSS pixels.
	DevicePixelRatio() float64
}
