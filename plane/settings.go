// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/grapher3d/base/errors"
	"cogentcore.org/grapher3d/colors"
	"cogentcore.org/grapher3d/logx"
	"github.com/jinzhu/copier"
)

// Config holds options fixed by the embedding application. They are not
// part of the saved graph state.
type Config struct {

	// LockViewport prevents all interactive changes to the view.
	LockViewport bool

	// Trace enables points of interest on selected sketches.
	Trace bool
}

// Settings are the graph settings that affect the 3D view.
type Settings struct {

	// Config is the application configuration.
	Config Config `json:"-"`

	// RandomSeed seeds random expressions. It is stored with the
	// graph but never reported as part of the 3D state.
	RandomSeed string `json:"randomSeed"`

	// DegreeMode interprets angles in degrees.
	DegreeMode bool `json:"degreeMode"`

	// UserLockedViewport is the user's own viewport lock.
	UserLockedViewport bool `json:"userLockedViewport"`

	// ShowAxis3D draws the axes and their arrow tips.
	ShowAxis3D bool `json:"showAxis3D"`

	// ShowBox3D draws the edges of the viewport box.
	ShowBox3D bool `json:"showBox3D"`

	// ShowPlane3D draws the 2D graph as a base plane.
	ShowPlane3D bool `json:"showPlane3D"`

	// AxisOpacity is the opacity of the axes in [0, 1].
	AxisOpacity float64 `json:"axisOpacity"`

	// MajorAxisOpacity is the opacity of major grid lines and the box.
	MajorAxisOpacity float64 `json:"majorAxisOpacity"`

	// MinorAxisOpacity is the opacity of minor grid lines.
	MinorAxisOpacity float64 `json:"minorAxisOpacity"`

	// BackgroundColor3D is the clear color as a hex string.
	BackgroundColor3D string `json:"backgroundColor3D"`

	XAxisScale Scale `json:"xAxisScale"`
	YAxisScale Scale `json:"yAxisScale"`
	ZAxisScale Scale `json:"zAxisScale"`
}

// DefaultSettings returns the settings of a new graph.
func DefaultSettings() *Settings {
	return &Settings{
		ShowAxis3D:        true,
		ShowBox3D:         true,
		ShowPlane3D:       true,
		AxisOpacity:       0.9,
		MajorAxisOpacity:  0.4,
		MinorAxisOpacity:  0.12,
		BackgroundColor3D: "#ffffff",
	}
}

// AxisScale returns the scale of each axis.
func (s *Settings) AxisScale() AxisScale {
	return AxisScale{X: s.XAxisScale, Y: s.YAxisScale, Z: s.ZAxisScale}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := &Settings{}
	errors.Log(copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}))
	return c
}

type property struct {
	get func(s *Settings) any
	set func(s *Settings, v any) error
}

func boolProperty(field func(s *Settings) *bool) property {
	return property{
		get: func(s *Settings) any { return *field(s) },
		set: func(s *Settings, v any) error {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("want bool, got %T", v)
			}
			*field(s) = b
			return nil
		},
	}
}

func opacityProperty(field func(s *Settings) *float64) property {
	return property{
		get: func(s *Settings) any { return *field(s) },
		set: func(s *Settings, v any) error {
			f, ok := number(v)
			if !ok {
				return fmt.Errorf("want number, got %T", v)
			}
			if !(f >= 0 && f <= 1) {
				return fmt.Errorf("opacity %v out of [0, 1]", f)
			}
			*field(s) = f
			return nil
		},
	}
}

func scaleProperty(field func(s *Settings) *Scale) property {
	return property{
		get: func(s *Settings) any { return field(s).String() },
		set: func(s *Settings, v any) error {
			switch x := v.(type) {
			case Scale:
				*field(s) = x
				return nil
			case string:
				sc, err := ParseScale(x)
				if err != nil {
					return err
				}
				*field(s) = sc
				return nil
			}
			return fmt.Errorf("want axis scale, got %T", v)
		},
	}
}

var properties = map[string]property{
	"randomSeed": {
		get: func(s *Settings) any { return s.RandomSeed },
		set: func(s *Settings, v any) error {
			str, ok := v.(string)
			if !ok {
				return fmt.Errorf("want string, got %T", v)
			}
			s.RandomSeed = str
			return nil
		},
	},
	"degreeMode":         boolProperty(func(s *Settings) *bool { return &s.DegreeMode }),
	"userLockedViewport": boolProperty(func(s *Settings) *bool { return &s.UserLockedViewport }),
	"showAxis3D":         boolProperty(func(s *Settings) *bool { return &s.ShowAxis3D }),
	"showBox3D":          boolProperty(func(s *Settings) *bool { return &s.ShowBox3D }),
	"showPlane3D":        boolProperty(func(s *Settings) *bool { return &s.ShowPlane3D }),
	"axisOpacity":        opacityProperty(func(s *Settings) *float64 { return &s.AxisOpacity }),
	"majorAxisOpacity":   opacityProperty(func(s *Settings) *float64 { return &s.MajorAxisOpacity }),
	"minorAxisOpacity":   opacityProperty(func(s *Settings) *float64 { return &s.MinorAxisOpacity }),
	"backgroundColor3D": {
		get: func(s *Settings) any { return s.BackgroundColor3D },
		set: func(s *Settings, v any) error {
			str, ok := v.(string)
			if !ok {
				return fmt.Errorf("want string, got %T", v)
			}
			if _, err := colors.FromHex(str); err != nil {
				return err
			}
			s.BackgroundColor3D = str
			return nil
		},
	},
	"xAxisScale": scaleProperty(func(s *Settings) *Scale { return &s.XAxisScale }),
	"yAxisScale": scaleProperty(func(s *Settings) *Scale { return &s.YAxisScale }),
	"zAxisScale": scaleProperty(func(s *Settings) *Scale { return &s.ZAxisScale }),
}

// StateProperties are the settings saved with a graph, in a stable order.
var StateProperties = func() []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}()

// IsStateProperty reports whether name is one of [StateProperties].
func IsStateProperty(name string) bool {
	_, ok := properties[name]
	return ok
}

// Property returns the state value of the named property.
func (s *Settings) Property(name string) (any, bool) {
	p, ok := properties[name]
	if !ok {
		return nil, false
	}
	return p.get(s), true
}

// SetProperty sets the named property, leaving s unchanged on error.
func (s *Settings) SetProperty(name string, v any) error {
	p, ok := properties[name]
	if !ok {
		return fmt.Errorf("plane: unknown setting %q", name)
	}
	if err := p.set(s, v); err != nil {
		return fmt.Errorf("plane: setting %q: %w", name, err)
	}
	return nil
}

// ValidateSettings returns the entries of state that are known state
// properties with acceptable values. Everything else is logged and dropped.
func ValidateSettings(state State) State {
	scratch := DefaultSettings()
	valid := State{}
	for name, v := range state {
		if name == "viewport" {
			continue
		}
		if err := scratch.SetProperty(name, v); err != nil {
			logx.Logger().Warn("dropping invalid setting", slog.String("name", name), slog.Any("err", err))
			continue
		}
		valid[name] = v
	}
	return valid
}
