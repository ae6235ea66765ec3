// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plane holds the model shared with the 2D grapher that hosts
// the 3D view: the viewport bounds, the screen size, the projection
// that combines them and the graph settings with their state
// serialization.
package plane

import (
	"encoding/json"
	"fmt"
	"math"

	"cogentcore.org/grapher3d/base/errors"
)

// ErrInvalidViewport is returned for viewport objects that cannot be decoded.
var ErrInvalidViewport = errors.New("plane: invalid viewport")

// Viewport is the axis-aligned box of math space that is graphed.
type Viewport struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
	Zmin float64 `json:"zmin"`
	Zmax float64 `json:"zmax"`
}

// DefaultViewport is [-10, 10] on every axis.
func DefaultViewport() Viewport {
	return Viewport{Xmin: -10, Xmax: 10, Ymin: -10, Ymax: 10, Zmin: -10, Zmax: 10}
}

// IsValid reports whether every bound is finite, every minimum is below
// its maximum and logarithmic axes stay positive.
func (v Viewport) IsValid(scale AxisScale) bool {
	axes := []struct {
		min, max float64
		scale    Scale
	}{{v.Xmin, v.Xmax, scale.X}, {v.Ymin, v.Ymax, scale.Y}, {v.Zmin, v.Zmax, scale.Z}}
	for _, ax := range axes {
		if !finite(ax.min) || !finite(ax.max) || !(ax.min < ax.max) {
			return false
		}
		if ax.scale == Logarithmic && ax.min <= 0 {
			return false
		}
	}
	return true
}

// Equals reports whether all bounds are equal.
func (v Viewport) Equals(o Viewport) bool {
	return v == o
}

// Lerp interpolates every bound from v toward to by t in [0, 1].
func (v Viewport) Lerp(to Viewport, t float64) Viewport {
	l := func(a, b float64) float64 { return a + (b-a)*t }
	return Viewport{
		Xmin: l(v.Xmin, to.Xmin), Xmax: l(v.Xmax, to.Xmax),
		Ymin: l(v.Ymin, to.Ymin), Ymax: l(v.Ymax, to.Ymax),
		Zmin: l(v.Zmin, to.Zmin), Zmax: l(v.Zmax, to.Zmax),
	}
}

// ToObject returns the bounds as a plain object.
func (v Viewport) ToObject() map[string]any {
	return map[string]any{
		"xmin": v.Xmin, "xmax": v.Xmax,
		"ymin": v.Ymin, "ymax": v.Ymax,
		"zmin": v.Zmin, "zmax": v.Zmax,
	}
}

// ViewportFromObject decodes a viewport from a [Viewport], a *Viewport,
// a plain object with numeric bounds or its JSON encoding. A missing
// z range defaults to the x range.
func ViewportFromObject(obj any) (Viewport, error) {
	switch o := obj.(type) {
	case Viewport:
		return o, nil
	case *Viewport:
		if o == nil {
			return Viewport{}, ErrInvalidViewport
		}
		return *o, nil
	case map[string]any:
		v := Viewport{}
		fields := []struct {
			name     string
			dst      *float64
			optional bool
		}{
			{"xmin", &v.Xmin, false}, {"xmax", &v.Xmax, false},
			{"ymin", &v.Ymin, false}, {"ymax", &v.Ymax, false},
			{"zmin", &v.Zmin, true}, {"zmax", &v.Zmax, true},
		}
		hasZ := false
		for _, f := range fields {
			raw, ok := o[f.name]
			if !ok {
				if f.optional {
					continue
				}
				return Viewport{}, fmt.Errorf("%w: missing %s", ErrInvalidViewport, f.name)
			}
			n, ok := number(raw)
			if !ok {
				return Viewport{}, fmt.Errorf("%w: %s is %T", ErrInvalidViewport, f.name, raw)
			}
			*f.dst = n
			hasZ = hasZ || f.optional
		}
		if !hasZ {
			v.Zmin, v.Zmax = v.Xmin, v.Xmax
		}
		return v, nil
	case []byte:
		var m map[string]any
		if err := json.Unmarshal(o, &m); err != nil {
			return Viewport{}, fmt.Errorf("%w: %w", ErrInvalidViewport, err)
		}
		return ViewportFromObject(m)
	}
	return Viewport{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidViewport, obj)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Scale is the scale of one axis.
type Scale int32

const (
	// Linear is an ordinary linear axis.
	Linear Scale = iota

	// Logarithmic is a log-scaled axis, whose bounds must be positive.
	Logarithmic
)

// String returns the state name of the scale.
func (s Scale) String() string {
	if s == Logarithmic {
		return "logarithmic"
	}
	return "linear"
}

// ParseScale parses "linear" or "logarithmic".
func ParseScale(s string) (Scale, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "logarithmic":
		return Logarithmic, nil
	}
	return Linear, fmt.Errorf("plane: unknown axis scale %q", s)
}

// AxisScale holds the scale of each axis.
type AxisScale struct {
	X, Y, Z Scale
}
