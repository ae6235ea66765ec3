// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	versionRegexp = regexp.MustCompile(`(\d+)\.(\d+)`)
	esRegexp      = regexp.MustCompile(`(?i)\bES\b`)
)

// GLSLVersion is a parsed SHADING_LANGUAGE_VERSION.
type GLSLVersion struct {

	// Number is the value of __VERSION__, e.g. 100, 300 or 330.
	Number int

	// ES is whether this is GLSL ES (WebGL) rather than desktop GLSL.
	ES bool
}

// ParseGLSLVersion parses strings such as "WebGL GLSL ES 3.00 (...)",
// "WebGL GLSL ES 1.0" or "4.60 NVIDIA". It falls back to GLSL ES 1.00
// when no version number is present.
func ParseGLSLVersion(s string) GLSLVersion {
	v := GLSLVersion{Number: 100, ES: true}
	m := versionRegexp.FindStringSubmatch(s)
	if m == nil {
		return v
	}
	major, _ := strconv.Atoi(m[1])
	minor := m[2]
	if len(minor) == 1 {
		minor += "0"
	}
	mn, _ := strconv.Atoi(minor[:2])
	v.Number = major*100 + mn
	v.ES = esRegexp.MatchString(s)
	return v
}

// Directive returns the #version line.
func (v GLSLVersion) Directive() string {
	switch {
	case v.ES && v.Number >= 300:
		return fmt.Sprintf("#version %d es\n", v.Number)
	case v.ES:
		return fmt.Sprintf("#version %d\n", v.Number)
	}
	return fmt.Sprintf("#version %d core\n", v.Number)
}

const vertexHeader = `#if __VERSION__ < 300
#define in attribute
#define out varying
#endif
`

const fragmentHeader = `#ifdef GL_FRAGMENT_PRECISION_HIGH
precision highp float;
#else
precision mediump float;
#endif
#if __VERSION__ < 300
#define color gl_FragColor
#define in varying
#define texture texture2D
#else
out vec4 color;
#endif
`

// Preprocess prepends the version directive and the compatibility
// header for the shader type, so one source compiles as GLSL ES 1.00,
// GLSL ES 3.00 and desktop GLSL. Sources use in/out, texture() and
// write their output to color.
func Preprocess(typ Enum, version GLSLVersion, src string) string {
	var b strings.Builder
	b.WriteString(version.Directive())
	switch typ {
	case VertexShader:
		b.WriteString(vertexHeader)
	case FragmentShader:
		b.WriteString(fragmentHeader)
	}
	b.WriteString("#line 1\n")
	b.WriteString(src)
	return b.String()
}
