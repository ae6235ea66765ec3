// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

import (
	"maps"
	"reflect"
)

// State is the flat, JSON-compatible graph state: a "viewport" entry
// plus one entry per state property.
type State map[string]any

// Clone returns a shallow copy of s with the viewport object copied.
func (s State) Clone() State {
	c := maps.Clone(s)
	if vp, ok := c["viewport"].(map[string]any); ok {
		c["viewport"] = maps.Clone(vp)
	}
	return c
}

// Viewport decodes the "viewport" entry, if any.
func (s State) Viewport() (Viewport, bool, error) {
	raw, ok := s["viewport"]
	if !ok || raw == nil {
		return Viewport{}, false, nil
	}
	vp, err := ViewportFromObject(raw)
	return vp, true, err
}

// StripDefaults removes every state property whose value equals the
// default, and the viewport when it is the default viewport.
func StripDefaults(s State) State {
	defaults := DefaultSettings()
	out := State{}
	for name, v := range s {
		if name == "viewport" {
			if vp, err := ViewportFromObject(v); err == nil && vp.Equals(DefaultViewport()) {
				continue
			}
			out[name] = v
			continue
		}
		if def, ok := defaults.Property(name); ok && reflect.DeepEqual(def, v) {
			continue
		}
		out[name] = v
	}
	return out
}

// DefaultState returns every state property at its default value,
// without a viewport.
func DefaultState() State {
	s := DefaultSettings()
	st := State{}
	for _, name := range StateProperties {
		st[name], _ = s.Property(name)
	}
	return st
}
