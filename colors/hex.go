// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors converts the color strings used by sketches and
// settings into the float triples consumed by the shaders.
package colors

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FromHex parses a "#rrggbb" or "#rgb" color into components in [0, 1].
func FromHex(hex string) ([3]float32, error) {
	if !isHexColor(hex) {
		return [3]float32{}, fmt.Errorf("colors: invalid hex color %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return [3]float32{}, fmt.Errorf("colors: invalid hex color %q: %w", hex, err)
	}
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// RGB is like [FromHex] but returns black for anything it cannot parse.
func RGB(hex string) [3]float32 {
	c, _ := FromHex(hex)
	return c
}

// RGBA returns [RGB] with the given alpha appended.
func RGBA(hex string, alpha float32) [4]float32 {
	c := RGB(hex)
	return [4]float32{c[0], c[1], c[2], alpha}
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}
	return true
}
