// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"embed"

	"cogentcore.org/grapher3d/base/errors"
	"cogentcore.org/grapher3d/logx"
)

//go:embed shaders/*.vert shaders/*.frag
var shaders embed.FS

// Names of the geometry attributes. [Geometry.Attributes] is keyed by
// these, and each maps onto the GLSL input "a" + capitalized name.
const (
	AttrPosition = "position"
	AttrColor    = "color"
	AttrNormal   = "normal"
	AttrTexCoord = "texCoord"
	AttrTangent  = "tangent"
	AttrOffset   = "offset"
)

// Names of the uniforms set by the rendering surface.
const (
	UniformModelView      = "uModelViewMatrix"
	UniformProjection     = "uProjectionMatrix"
	UniformLightDirection = "uLightDirection"
	UniformAmbientLight   = "uAmbientLight"
	UniformResolution     = "uResolution"
	UniformTexture        = "uTexture"
)

// PositionInput is the GLSL name of the position attribute,
// which every program binds to location 0.
const PositionInput = "aPosition"

// Attribute describes one vertex attribute of a [Program].
type Attribute struct {

	// Name is the geometry attribute name, e.g. [AttrColor].
	Name string

	// Input is the GLSL input variable, e.g. "aColor".
	Input string

	// Channels is the number of floats per vertex.
	Channels int

	// Location is the attribute location after linking, or -1 when
	// the driver optimized the input away.
	Location int
}

// ProgramSource describes a shader program to build.
type ProgramSource struct {
	Name       string
	Vertex     string
	Fragment   string
	Attributes []Attribute
	Uniforms   []string
}

// Program is a linked shader program together with its attribute
// layout and uniform locations.
type Program struct {

	// Name is the name of the program, for logging.
	Name string

	// ID is the GL program object.
	ID ProgramID

	// Attributes are the vertex attributes, position first.
	Attributes []Attribute

	// Uniforms maps uniform names to locations. Inactive uniforms
	// map to the null location, which backends ignore.
	Uniforms map[string]UniformLoc

	ctx Context
}

// NewProgram compiles and links the given sources. On any compile or
// link failure it logs the driver diagnostics and returns nil;
// callers treat a nil program as a feature that is unavailable.
func NewProgram(ctx Context, src ProgramSource) *Program {
	version := ParseGLSLVersion(ctx.GetString(ShadingLanguageVersion))
	id := ctx.CreateProgram()
	for _, st := range []struct {
		typ  Enum
		code string
	}{{VertexShader, src.Vertex}, {FragmentShader, src.Fragment}} {
		sh := compileShader(ctx, src.Name, st.typ, Preprocess(st.typ, version, st.code))
		if sh.IsNil() {
			ctx.DeleteProgram(id)
			return nil
		}
		ctx.AttachShader(id, sh)
		ctx.DeleteShader(sh)
	}
	ctx.BindAttribLocation(id, 0, PositionInput)
	ctx.LinkProgram(id)
	if !ctx.ProgramLinked(id) {
		logx.Logger().Error("gpu.NewProgram: shader program linking error", "program", src.Name, "log", ctx.ProgramInfoLog(id))
		ctx.DeleteProgram(id)
		return nil
	}

	pr := &Program{Name: src.Name, ID: id, ctx: ctx, Uniforms: make(map[string]UniformLoc, len(src.Uniforms))}
	for _, at := range src.Attributes {
		if at.Input == PositionInput {
			at.Location = 0
		} else {
			at.Location = ctx.GetAttribLocation(id, at.Input)
		}
		pr.Attributes = append(pr.Attributes, at)
	}
	for _, u := range src.Uniforms {
		pr.Uniforms[u] = ctx.GetUniformLocation(id, u)
	}
	logx.Logger().Debug("gpu.NewProgram: linked", "program", src.Name, "version", version.Number)
	return pr
}

func compileShader(ctx Context, program string, typ Enum, code string) ShaderID {
	sh := ctx.CreateShader(typ)
	ctx.ShaderSource(sh, code)
	ctx.CompileShader(sh)
	if !ctx.ShaderCompiled(sh) {
		kind := "vertex"
		if typ == FragmentShader {
			kind = "fragment"
		}
		logx.Logger().Error("gpu.NewProgram: shader compilation error", "program", program, "shader", kind, "log", ctx.ShaderInfoLog(sh))
		ctx.DeleteShader(sh)
		return ShaderID{}
	}
	return sh
}

// Use makes the program current.
func (pr *Program) Use() {
	pr.ctx.UseProgram(pr.ID)
}

// Uniform returns the location of the named uniform, which is the
// null location if the program does not use it.
func (pr *Program) Uniform(name string) UniformLoc {
	return pr.Uniforms[name]
}

// NewGeometryBuffer returns an empty buffer laid out for this program.
func (pr *Program) NewGeometryBuffer() *GeometryBuffer {
	return NewGeometryBuffer(pr.ctx, pr.Attributes...)
}

// Release deletes the GL program.
func (pr *Program) Release() {
	if pr == nil || pr.ID.IsNil() {
		return
	}
	pr.ctx.DeleteProgram(pr.ID)
	pr.ID = ProgramID{}
}

// Programs is the registry of the shader programs used by the grapher.
// Any of them may be nil when it failed to build.
type Programs struct {

	// Triangles draws lit, per-vertex colored triangles.
	Triangles *Program

	// Textured draws triangles sampling a texture.
	Textured *Program

	// Lines draws screen-space thick lines.
	Lines *Program
}

// NewPrograms builds all programs.
func NewPrograms(ctx Context) *Programs {
	src := func(name string) string {
		return string(errors.Log1(shaders.ReadFile("shaders/" + name)))
	}
	mvp := []string{UniformModelView, UniformProjection}
	return &Programs{
		Triangles: NewProgram(ctx, ProgramSource{
			Name:     "triangles",
			Vertex:   src("triangles.vert"),
			Fragment: src("color.frag"),
			Attributes: []Attribute{
				{Name: AttrPosition, Input: PositionInput, Channels: 3},
				{Name: AttrColor, Input: "aColor", Channels: 3},
				{Name: AttrNormal, Input: "aNormal", Channels: 3},
			},
			Uniforms: append(mvp, UniformLightDirection, UniformAmbientLight),
		}),
		Textured: NewProgram(ctx, ProgramSource{
			Name:     "textured",
			Vertex:   src("textured.vert"),
			Fragment: src("textured.frag"),
			Attributes: []Attribute{
				{Name: AttrPosition, Input: PositionInput, Channels: 3},
				{Name: AttrTexCoord, Input: "aTexCoord", Channels: 2},
			},
			Uniforms: append(mvp, UniformTexture),
		}),
		Lines: NewProgram(ctx, ProgramSource{
			Name:     "lines",
			Vertex:   src("lines.vert"),
			Fragment: src("color.frag"),
			Attributes: []Attribute{
				{Name: AttrPosition, Input: PositionInput, Channels: 3},
				{Name: AttrColor, Input: "aColor", Channels: 4},
				{Name: AttrTangent, Input: "aTangent", Channels: 3},
				{Name: AttrOffset, Input: "aOffset", Channels: 1},
			},
			Uniforms: append(mvp, UniformResolution),
		}),
	}
}

// All returns the programs that built successfully.
func (ps *Programs) All() []*Program {
	var all []*Program
	for _, p := range []*Program{ps.Triangles, ps.Textured, ps.Lines} {
		if p != nil {
			all = append(all, p)
		}
	}
	return all
}

// Release deletes all programs.
func (ps *Programs) Release() {
	for _, p := range ps.All() {
		p.Release()
	}
}
