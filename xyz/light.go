// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Lighting is the single directional light plus ambient term used to
// shade triangles. Shading is Lambertian on the absolute value of the
// cosine, so both sides of a surface are lit.
type Lighting struct {

	// Direction points toward the light, in math coordinates.
	// It need not be normalized.
	Direction mgl32.Vec3

	// Ambient is the light added to every lit surface, in [0, 1].
	Ambient float32
}

// NewLighting returns the lighting described by cfg.
func NewLighting(cfg config.Lighting) Lighting {
	return Lighting{Direction: mgl32.Vec3(cfg.Direction), Ambient: cfg.Ambient}
}

// Apply sets the light uniforms of pr, which must be in use.
func (lt Lighting) Apply(ctx gpu.Context, pr *gpu.Program) {
	d := lt.Direction
	ctx.Uniform3f(pr.Uniform(gpu.UniformLightDirection), d[0], d[1], d[2])
	ctx.Uniform1f(pr.Uniform(gpu.UniformAmbientLight), lt.Ambient)
}
