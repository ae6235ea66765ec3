// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPowerOf2(t *testing.T) {
	for _, n := range []int{1, 2, 4, 256, 1024} {
		assert.True(t, IsPowerOf2(n), n)
	}
	for _, n := range []int{0, -4, 3, 768, 1000} {
		assert.False(t, IsPowerOf2(n), n)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3.0, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3.0, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}

func TestZUp(t *testing.T) {
	// math z (up) lands on camera y
	v := ZUp.Mul4x1(mgl32.Vec4{0, 0, 1, 0})
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 0}, v)
	v = ZUp.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 0}, v)
}

func TestInfinitePerspective(t *testing.T) {
	p := InfinitePerspective(mgl32.DegToRad(45), 2, 0.1)
	assert.True(t, IsFiniteMat4(p))
	assert.Equal(t, float32(-1), p[11])
	assert.InDelta(t, -0.2, p[14], 1e-6)
	assert.InDelta(t, p[5]/2, p[0], 1e-6)

	// a point on the near plane maps to depth -1
	clip := p.Mul4x1(mgl32.Vec4{0, 0, -0.1, 1})
	assert.InDelta(t, -1, clip.Z()/clip.W(), 1e-5)
}
