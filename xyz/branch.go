// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GraphMode is the kind of object an evaluator branch describes.
type GraphMode int32

const (
	ModeError GraphMode = iota
	ModeCurveParametric
	ModeCurveParametricCylindrical
	ModeCurveParametricSpherical
	ModeCurvePlanarGraph
	ModeSurfaceParametric
	ModeSurfaceParametricCylindrical
	ModeSurfaceParametricSpherical
	ModeSurfaceZBased
	ModeSurfaceXBased
	ModeSurfaceYBased
	ModeSurfaceZBasedPolar
	ModeSurfaceCylindrical
	ModeSurfaceSpherical
	ModeSurfaceImplicit
	ModePoint
	ModeTriangle
	ModeSphere
	ModeSegment
	ModeVector
	GraphModeN
)

var graphModeNames = [...]string{"Error", "CurveParametric", "CurveParametricCylindrical", "CurveParametricSpherical", "CurvePlanarGraph", "SurfaceParametric", "SurfaceParametricCylindrical", "SurfaceParametricSpherical", "SurfaceZBased", "SurfaceXBased", "SurfaceYBased", "SurfaceZBasedPolar", "SurfaceCylindrical", "SurfaceSpherical", "SurfaceImplicit", "Point", "Triangle", "Sphere", "Segment", "Vector"}

func (m GraphMode) String() string {
	if m >= 0 && m < GraphModeN {
		return graphModeNames[m]
	}
	return fmt.Sprintf("GraphMode(%d)", int32(m))
}

// MeshData is a triangulated surface from the evaluator.
// Positions, Normals and UVs are flat per-vertex arrays.
type MeshData struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Faces     []uint32
}

// BranchData is the payload of a branch as the evaluator produces it.
// Which fields are meaningful depends on the mode.
type BranchData struct {
	Color     string
	Style     string
	Points    []float32
	Thickness float64
	Mesh      MeshData
	Position  mgl32.Vec3
	Radius    float32
}

// Branch is one mathematical object of a sketch. It is one of
// [*Curve], [*SurfaceMesh], [*Sphere], [*Point], [*Triangle], [*Segment]
// or [*Unsupported].
type Branch interface {
	AsBranchBase() *BranchBase
}

// BranchBase holds the fields shared by all branches.
type BranchBase struct {
	Mode  GraphMode
	Color string
	Style string
}

func (bb *BranchBase) AsBranchBase() *BranchBase { return bb }

// Curve is a polyline through Points (x, y, z triples).
type Curve struct {
	BranchBase
	Points    []float32
	Thickness float64
}

// SurfaceMesh is a surface given as a triangle mesh.
type SurfaceMesh struct {
	BranchBase
	Mesh MeshData
}

// Triangle is a filled triangle, given as a mesh.
type Triangle struct {
	BranchBase
	Mesh MeshData
}

// Sphere is a sphere in math units.
type Sphere struct {
	BranchBase
	Center mgl32.Vec3
	Radius float32
}

// Point is a point drawn as a small sphere.
type Point struct {
	BranchBase
	Center mgl32.Vec3
	Radius float32
}

// Segment is a segment or, when Vector is set, an arrow from the
// first to the last point.
type Segment struct {
	BranchBase
	Points    []float32
	Thickness float64
	Vector    bool
}

// Unsupported is a branch of a mode that is not drawn in 3D.
type Unsupported struct {
	BranchBase
}

// NewBranch returns the branch variant for mode.
func NewBranch(mode GraphMode, data BranchData) Branch {
	base := BranchBase{Mode: mode, Color: data.Color, Style: data.Style}
	switch mode {
	case ModeCurveParametric, ModeCurveParametricCylindrical, ModeCurveParametricSpherical, ModeCurvePlanarGraph:
		return &Curve{BranchBase: base, Points: data.Points, Thickness: data.Thickness}
	case ModeSurfaceParametric, ModeSurfaceParametricCylindrical, ModeSurfaceParametricSpherical,
		ModeSurfaceZBased, ModeSurfaceXBased, ModeSurfaceYBased, ModeSurfaceZBasedPolar,
		ModeSurfaceCylindrical, ModeSurfaceSpherical, ModeSurfaceImplicit:
		return &SurfaceMesh{BranchBase: base, Mesh: data.Mesh}
	case ModeTriangle:
		return &Triangle{BranchBase: base, Mesh: data.Mesh}
	case ModeSphere:
		return &Sphere{BranchBase: base, Center: data.Position, Radius: data.Radius}
	case ModePoint:
		return &Point{BranchBase: base, Center: data.Position, Radius: data.Radius}
	case ModeSegment, ModeVector:
		return &Segment{BranchBase: base, Points: data.Points, Thickness: data.Thickness, Vector: mode == ModeVector}
	}
	return &Unsupported{BranchBase: base}
}
