// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the tunable parameters of the 3D grapher:
// camera defaults, lighting, interaction feel and rendering sizes.
// Configs are read from TOML, YAML or JSON files.
package config

import (
	"math"
	"time"
)

// Config is the main config struct
// that contains all of the tunable
// parameters of the 3D grapher.
type Config struct {

	// Camera is the initial camera pose and its limits.
	Camera Camera `toml:"camera" yaml:"camera" json:"camera"`

	// Lighting is the directional light used by the triangles program.
	Lighting Lighting `toml:"lighting" yaml:"lighting" json:"lighting"`

	// Interaction controls how input maps onto camera motion.
	Interaction Interaction `toml:"interaction" yaml:"interaction" json:"interaction"`

	// Rendering holds geometry resolutions and widths.
	Rendering Rendering `toml:"rendering" yaml:"rendering" json:"rendering"`
}

type Camera struct {

	// [def: 40] the distance of the camera from the origin
	Distance float64 `toml:"distance" yaml:"distance" json:"distance"`

	// [def: 0.1π] the rotation about the horizontal axis, in radians
	Pitch float64 `toml:"pitch" yaml:"pitch" json:"pitch"`

	// [def: 1.9π] the rotation about the vertical axis, in radians
	Yaw float64 `toml:"yaw" yaml:"yaw" json:"yaw"`

	// [def: 45] the vertical field of view, in degrees
	FieldOfView float64 `toml:"field-of-view" yaml:"field-of-view" json:"fieldOfView"`

	// [def: 0.1] the closest the camera can zoom in
	MinDistance float64 `toml:"min-distance" yaml:"min-distance" json:"minDistance"`

	// [def: 1e5] the farthest the camera can zoom out
	MaxDistance float64 `toml:"max-distance" yaml:"max-distance" json:"maxDistance"`
}

type Lighting struct {

	// [def: [1, 1, 5]] the direction toward the light; it need not be normalized
	Direction [3]float32 `toml:"direction" yaml:"direction" json:"direction"`

	// [def: 0.4] the ambient light added to every lit surface
	Ambient float32 `toml:"ambient" yaml:"ambient" json:"ambient"`
}

type Interaction struct {

	// [def: 1.0625] the distance factor of one wheel step
	ZoomFactor float64 `toml:"zoom-factor" yaml:"zoom-factor" json:"zoomFactor"`

	// [def: 0.2] scales drag distance into rotation
	RotateDamping float64 `toml:"rotate-damping" yaml:"rotate-damping" json:"rotateDamping"`

	// [def: 50ms] wheel events closer together than this after a key
	// press or blur keep scroll zoom disabled
	ScrollZoomCooldown time.Duration `toml:"scroll-zoom-cooldown" yaml:"scroll-zoom-cooldown" json:"scrollZoomCooldown"`

	// [def: 10] pointer travel in pixels that ends page scrolling
	ScrollMoveThreshold float64 `toml:"scroll-move-threshold" yaml:"scroll-move-threshold" json:"scrollMoveThreshold"`

	// [def: 1s] the quiet time before a viewport change is committed
	CommitDelay time.Duration `toml:"commit-delay" yaml:"commit-delay" json:"commitDelay"`

	// [def: 300ms] the length of animated viewport changes
	AnimationDuration time.Duration `toml:"animation-duration" yaml:"animation-duration" json:"animationDuration"`
}

type Rendering struct {

	// [def: 20] the number of latitude bands of a sphere
	SphereLatitudes int `toml:"sphere-latitudes" yaml:"sphere-latitudes" json:"sphereLatitudes"`

	// [def: 20] the number of longitude bands of a sphere
	SphereLongitudes int `toml:"sphere-longitudes" yaml:"sphere-longitudes" json:"sphereLongitudes"`

	// [def: 4] converts sketch thickness into line width in pixels
	CurveWidthScale float64 `toml:"curve-width-scale" yaml:"curve-width-scale" json:"curveWidthScale"`

	// [def: 2] the width of the axis lines in pixels
	AxisWidth float32 `toml:"axis-width" yaml:"axis-width" json:"axisWidth"`

	// [def: 20] the base width of the arrow tips in pixels
	ArrowWidth float32 `toml:"arrow-width" yaml:"arrow-width" json:"arrowWidth"`

	// [def: 0.25] the length of the arrow tips in math units
	ArrowLength float32 `toml:"arrow-length" yaml:"arrow-length" json:"arrowLength"`

	// [def: 768] the width of the raster captured for the base plane
	BaseplaneWidth int `toml:"baseplane-width" yaml:"baseplane-width" json:"baseplaneWidth"`

	// [def: #ffffff] the background until settings provide one
	BackgroundColor string `toml:"background-color" yaml:"background-color" json:"backgroundColor"`
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		Camera: Camera{
			Distance:    40,
			Pitch:       0.1 * math.Pi,
			Yaw:         1.9 * math.Pi,
			FieldOfView: 45,
			MinDistance: 0.1,
			MaxDistance: 1e5,
		},
		Lighting: Lighting{
			Direction: [3]float32{1, 1, 5},
			Ambient:   0.4,
		},
		Interaction: Interaction{
			ZoomFactor:          1.0625,
			RotateDamping:       0.2,
			ScrollZoomCooldown:  50 * time.Millisecond,
			ScrollMoveThreshold: 10,
			CommitDelay:         time.Second,
			AnimationDuration:   300 * time.Millisecond,
		},
		Rendering: Rendering{
			SphereLatitudes:  20,
			SphereLongitudes: 20,
			CurveWidthScale:  4,
			AxisWidth:        2,
			ArrowWidth:       20,
			ArrowLength:      0.25,
			BaseplaneWidth:   768,
			BackgroundColor:  "#ffffff",
		},
	}
}

// OrDefault returns c, or [Default] if c is nil.
func OrDefault(c *Config) *Config {
	if c == nil {
		return Default()
	}
	return c
}
