// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Enum is a GL enumerant. The values are shared by WebGL 1, WebGL 2
// and desktop OpenGL, so backends pass them through unchanged.
type Enum uint32

// GL enumerants used by the renderer.
const (
	DepthBufferBit Enum = 0x00000100
	ColorBufferBit Enum = 0x00004000

	Triangles Enum = 0x0004

	SrcAlpha         Enum = 0x0302
	OneMinusSrcAlpha Enum = 0x0303

	Lequal Enum = 0x0203

	Blend     Enum = 0x0BE2
	DepthTest Enum = 0x0B71

	UnsignedByte Enum = 0x1401
	UnsignedInt  Enum = 0x1405
	Float        Enum = 0x1406

	RGBA Enum = 0x1908

	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	DynamicDraw        Enum = 0x88E8
	StaticDraw         Enum = 0x88E4

	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31

	ShadingLanguageVersion Enum = 0x8B8C

	Texture2D          Enum = 0x0DE1
	Texture0           Enum = 0x84C0
	TextureMagFilter   Enum = 0x2800
	TextureMinFilter   Enum = 0x2801
	TextureWrapS       Enum = 0x2802
	TextureWrapT       Enum = 0x2803
	Linear             Enum = 0x2601
	LinearMipmapLinear Enum = 0x2703
	ClampToEdge        Enum = 0x812F
)

// Object is a backend-specific GL object handle: a js.Value in the
// browser and a uint32 name on the desktop. The zero Object is the
// null object.
type Object struct {
	v any
}

// NewObject wraps a backend handle. Backends must map their null
// handle to the zero Object themselves.
func NewObject(v any) Object {
	return Object{v: v}
}

// Value returns the backend handle.
func (o Object) Value() any {
	return o.v
}

// IsNil reports whether o is the null object.
func (o Object) IsNil() bool {
	return o.v == nil
}

// Handle types. Each wraps an [Object] so the Context methods cannot
// be handed the wrong kind of object.
type (
	ShaderID   struct{ Object }
	ProgramID  struct{ Object }
	BufferID   struct{ Object }
	TextureID  struct{ Object }
	UniformLoc struct{ Object }
)
