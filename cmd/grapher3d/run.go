// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/demo"
	"cogentcore.org/grapher3d/events"
	"cogentcore.org/grapher3d/gpu/desktop"
	"cogentcore.org/grapher3d/logx"
	"cogentcore.org/grapher3d/plane"
	"cogentcore.org/grapher3d/xyz"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func run(ctx context.Context, opts *options) error {
	cfg := config.Default()
	if opts.config != "" {
		c, err := config.Open(opts.config)
		if err != nil {
			return err
		}
		cfg = c
	}

	win, err := desktop.NewWindow("grapher3d", opts.width, opts.height)
	if err != nil {
		return err
	}
	defer win.Terminate()

	loop := demo.NewLoop()
	h := &host{win: win, selected: map[string]bool{}}
	g, err := xyz.NewGrapher(xyz.Options{
		Context:   win.Context,
		Canvas:    win,
		Host:      h,
		Config:    cfg,
		Clock:     loop,
		Scheduler: loop,
	})
	if err != nil {
		return err
	}
	h.g = g
	defer g.Remove()

	demo.Load(g)
	if opts.state != "" {
		st, err := readState(opts.state)
		if err != nil {
			return err
		}
		g.SetGrapherState(st, xyz.StateOptions{DoNotClear: true})
	}
	if opts.config != "" {
		err := config.Watch(ctx, opts.config, func(c *config.Config) {
			loop.Post(func() { applyConfig(g, c) })
		})
		if err != nil {
			logx.Logger().Warn("grapher3d: not watching config", slog.Any("err", err))
		}
	}

	var queue events.Deque
	win.BindEvents(queue.Send)
	for !win.ShouldClose() && ctx.Err() == nil {
		glfw.PollEvents()
		for ev := queue.NextEvent(); ev != nil; ev = queue.NextEvent() {
			g.HandleEvent(ev)
		}
		loop.Run(time.Now())
		if !g.NeedsRedraw() {
			g.Update()
		}
		if g.NeedsRedraw() {
			g.Tick()
			win.SwapBuffers()
		} else {
			glfw.WaitEventsTimeout(1.0 / 60)
		}
	}
	return nil
}

// applyConfig applies the part of a reloaded config that can change
// while running, the lighting.
func applyConfig(g *xyz.Grapher, c *config.Config) {
	g.Surface().Lighting = xyz.NewLighting(c.Lighting)
	g.RedrawAllLayers()
	logx.Logger().Info("grapher3d: config reloaded")
}

func readState(path string) (plane.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var st plane.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("grapher3d: %s: %w", path, err)
	}
	return st, nil
}
