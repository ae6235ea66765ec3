// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math"

	"cogentcore.org/grapher3d/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultFieldOfView is the vertical field of view, in degrees.
const DefaultFieldOfView = 45

// Orientation is an orbital camera around the origin, described by its
// distance, pitch and yaw. The math convention is Z-up: yaw turns the
// camera around the math Z axis.
type Orientation struct {
	distance    float64
	pitch       float64
	yaw         float64
	fieldOfView float64
	projection  mgl32.Mat4
}

// NewOrientation returns a camera with the given pose, the default
// field of view and an identity projection until the first
// [Orientation.UpdateProjection].
func NewOrientation(distance, pitch, yaw float64) *Orientation {
	or := &Orientation{
		distance:    distance,
		yaw:         yaw,
		fieldOfView: DefaultFieldOfView * math.Pi / 180,
		projection:  mgl32.Ident4(),
	}
	or.SetPitch(pitch)
	return or
}

func (or *Orientation) Distance() float64 { return or.distance }
func (or *Orientation) Pitch() float64 { return or.pitch }
func (or *Orientation) Yaw() float64 { return or.yaw }

// FieldOfView returns the vertical field of view in radians.
func (or *Orientation) FieldOfView() float64 { return or.fieldOfView }

// SetDistance sets the distance from the origin.
func (or *Orientation) SetDistance(distance float64) {
	or.distance = distance
}

// SetPitch sets the pitch, clamped to [-π/2, π/2].
func (or *Orientation) SetPitch(pitch float64) {
	or.pitch = math32.Clamp(pitch, -math.Pi/2, math.Pi/2)
}

// SetYaw sets the yaw. It is not wrapped.
func (or *Orientation) SetYaw(yaw float64) {
	or.yaw = yaw
}

// SetFieldOfView sets the vertical field of view in radians. It takes
// effect at the next [Orientation.UpdateProjection].
func (or *Orientation) SetFieldOfView(fov float64) {
	or.fieldOfView = fov
}

// UpdateProjection recomputes the perspective projection for a drawing
// buffer of the given size in pixels. It does nothing unless both are
// positive.
func (or *Orientation) UpdateProjection(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	or.projection = math32.InfinitePerspective(float32(or.fieldOfView), float32(width)/float32(height), 0.1)
}

// Projection returns the projection matrix.
func (or *Orientation) Projection() mgl32.Mat4 {
	return or.projection
}

// ModelView returns the view matrix: the math axes are permuted into
// the Y-up frame, then rotated by yaw and pitch and pushed back by the
// distance.
func (or *Orientation) ModelView() mgl32.Mat4 {
	mv := mgl32.Translate3D(0, 0, -float32(or.distance))
	mv = mv.Mul4(mgl32.HomogRotate3DX(float32(or.pitch)))
	mv = mv.Mul4(mgl32.HomogRotate3DY(float32(or.yaw)))
	return mv.Mul4(math32.ZUp)
}

// Equals reports whether both cameras produce the same matrices,
// so yaw and yaw+2π are equal.
func (or *Orientation) Equals(other *Orientation) bool {
	return or.ModelView().ApproxEqualThreshold(other.ModelView(), 1e-6) &&
		or.projection.ApproxEqualThreshold(other.projection, 1e-6)
}

// Clone returns a copy of the camera.
func (or *Orientation) Clone() *Orientation {
	c := *or
	return &c
}

// Lerp returns the camera a fraction t of the way from or to to.
// Distance is interpolated geometrically so zoom feels uniform.
func (or *Orientation) Lerp(to *Orientation, t float64) *Orientation {
	c := or.Clone()
	c.distance = or.distance * math.Pow(to.distance/or.distance, t)
	c.SetPitch(or.pitch + (to.pitch-or.pitch)*t)
	c.yaw = or.yaw + (to.yaw-or.yaw)*t
	c.fieldOfView = or.fieldOfView + (to.fieldOfView-or.fieldOfView)*t
	return c
}
