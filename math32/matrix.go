// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/go-gl/mathgl/mgl32"

// ZUp is the permutation matrix that maps math coordinates, where z is
// up, onto GL camera coordinates, where y is up: x becomes z,
// y becomes x and z becomes y.
var ZUp = mgl32.Mat4{
	0, 0, 1, 0,
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0, 1,
}

// InfinitePerspective returns a right-handed perspective projection
// with the given vertical field of view (radians), aspect ratio and
// near plane, and the far plane at infinity.
// mgl32.Perspective cannot express an infinite far plane.
func InfinitePerspective(fovy, aspect, near float32) mgl32.Mat4 {
	f := 1 / Tan(fovy/2)
	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -1, -1,
		0, 0, -2 * near, 0,
	}
}

// IsFiniteMat4 reports whether every entry of m is finite.
func IsFiniteMat4(m mgl32.Mat4) bool {
	for _, v := range m {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
