// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Sketch is the 3D rendering of one expression: its branches plus the
// selection state shown for it.
type Sketch struct {
	ID       string
	Branches []Branch
	Color    string
	Style    string
	UI       SketchUI
	Labels   []string
}

// SketchUI is the transient selection state of a sketch.
type SketchUI struct {
	ShowPOI       bool
	ShowHighlight bool
	Selected      bool
	TokenHovered  bool
	TokenSelected bool
}

// NewSketch returns a black, normal-style sketch.
func NewSketch(id string, branches []Branch) *Sketch {
	return &Sketch{ID: id, Branches: branches, Color: "#000000", Style: "normal"}
}

// UpdateFrom carries the UI state of the sketch being replaced forward.
func (sk *Sketch) UpdateFrom(previous *Sketch) {
	if previous == nil {
		return
	}
	sk.UI = previous.UI
}
