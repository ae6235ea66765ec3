// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/grapher3d/base/errors"
	"cogentcore.org/grapher3d/gpu"
	"cogentcore.org/grapher3d/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default and minimum sphere resolution.
const (
	DefaultLatitudes  = 20
	DefaultLongitudes = 20

	MinLatitudes  = 2
	MinLongitudes = 3
)

// ErrSphereResolution is returned by [Sphere] for a resolution below
// [MinLatitudes] by [MinLongitudes].
var ErrSphereResolution = errors.New("shape: sphere resolution too low")

// SphereSize returns the number of vertices and triangles of a UV
// sphere with the given resolution: a vertex at each pole, a ring of
// longitudes vertices for each of the latitudes-1 inner latitudes,
// a fan of longitudes triangles at each pole and two triangles for
// each quad between adjacent rings.
func SphereSize(latitudes, longitudes int) (vertices, triangles int) {
	return 2 + (latitudes-1)*longitudes, ((latitudes-2)*2 + 2) * longitudes
}

// Sphere returns a UV sphere with uniform color, with attributes
// [gpu.AttrPosition], [gpu.AttrColor] and [gpu.AttrNormal].
// Vertex 0 is the top pole at center.z + radius and vertex 1 the bottom
// pole; the rings follow from top to bottom. Pole normals point along
// ±z scaled by the sign of the radius, so a negative radius turns the
// sphere inside out. It fails with [ErrSphereResolution] for fewer
// than [MinLatitudes] latitudes or [MinLongitudes] longitudes.
func Sphere(center mgl32.Vec3, radius float32, color [3]float32, latitudes, longitudes int) (gpu.Geometry, error) {
	if latitudes < MinLatitudes || longitudes < MinLongitudes {
		return gpu.Geometry{}, fmt.Errorf("%w: %dx%d", ErrSphereResolution, latitudes, longitudes)
	}
	nv, nt := SphereSize(latitudes, longitudes)
	pos := make([]float32, 0, nv*3)
	norm := make([]float32, 0, nv*3)
	cx, cy, cz := center.Elem()
	sign := math32.Sign(radius)

	pos = append(pos, cx, cy, cz+radius, cx, cy, cz-radius)
	norm = append(norm, 0, 0, sign, 0, 0, -sign)

	dirs := make([][2]float32, longitudes)
	for lon := range dirs {
		a := 2 * math32.Pi * float32(lon) / float32(longitudes)
		dirs[lon] = [2]float32{math32.Cos(a), math32.Sin(a)}
	}
	for lat := 1; lat < latitudes; lat++ {
		a := math32.Pi * float32(lat) / float32(latitudes)
		z := math32.Cos(a)
		scale := math32.Sin(a)
		for _, d := range dirs {
			x, y := d[0]*scale, d[1]*scale
			pos = append(pos, x*radius+cx, y*radius+cy, z*radius+cz)
			norm = append(norm, x, y, z)
		}
	}

	idx := make([]uint32, nt*3)
	last := uint32(nv - 1)
	lons := uint32(longitudes)
	for lon := uint32(0); lon < lons; lon++ {
		next := (lon + 1) % lons
		copy(idx[lon*3:], []uint32{0, 2 + lon, 2 + next})
		copy(idx[(lons+lon)*3:], []uint32{1, last - lon, last - next})
		t := 2*lons + 2*lon
		for ring := uint32(0); ring+1 < uint32(latitudes-1); ring++ {
			p0 := 2 + ring*lons + lon
			p1 := 2 + ring*lons + next
			p2 := 2 + (ring+1)*lons + next
			p3 := 2 + (ring+1)*lons + lon
			copy(idx[t*3:], []uint32{p0, p1, p2, p2, p3, p0})
			t += 2 * lons
		}
	}

	return gpu.Geometry{
		Indices: idx,
		Attributes: map[string][]float32{
			gpu.AttrPosition: pos,
			gpu.AttrColor:    Fill(color[:], nv),
			gpu.AttrNormal:   norm,
		},
	}, nil
}
