// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

// Screen is the size of the graph area in CSS pixels.
type Screen struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultScreen is the size assumed before the first layout.
func DefaultScreen() Screen {
	return Screen{Width: 1024, Height: 768}
}

// Projection ties a screen to the viewport it shows and the settings
// that affect interaction with it. It is a value: changing the
// viewport means making a new Projection.
type Projection struct {
	Screen   Screen
	Viewport Viewport
	Settings *Settings
}

// NewProjection returns a projection of viewport onto screen.
func NewProjection(screen Screen, viewport Viewport, settings *Settings) Projection {
	return Projection{Screen: screen, Viewport: viewport, Settings: settings}
}

// WithViewport returns a copy of p showing viewport.
func (p Projection) WithViewport(viewport Viewport) Projection {
	p.Viewport = viewport
	return p
}

// WithScreen returns a copy of p on screen.
func (p Projection) WithScreen(screen Screen) Projection {
	p.Screen = screen
	return p
}

// IsViewportLocked reports whether interaction may not change the view,
// either because the application locked it or the user did.
func (p Projection) IsViewportLocked() bool {
	return p.Settings != nil && (p.Settings.Config.LockViewport || p.Settings.UserLockedViewport)
}
