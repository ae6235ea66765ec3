// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Command grapher3d opens a desktop window showing the demo sketches
// in the 3D grapher. Drag to rotate and scroll to zoom.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/grapher3d/config"
	"cogentcore.org/grapher3d/logx"
	"github.com/spf13/cobra"
)

type options struct {
	config string
	state  string
	width  int
	height int
	level  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "grapher3d",
		Short: "Show the demo sketches in the 3D grapher",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.level)); err != nil {
				return err
			}
			logx.UserLevel.Set(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.level, "log-level", "info", "minimum log level (debug, info, warn, error)")
	root.Flags().StringVarP(&opts.config, "config", "c", "", "config file (.toml, .yaml or .json), reloaded when it changes")
	root.Flags().StringVar(&opts.state, "state", "", "JSON graph state to restore at startup")
	root.Flags().IntVar(&opts.width, "width", 1024, "window width")
	root.Flags().IntVar(&opts.height, "height", 768, "window height")
	root.AddCommand(newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <file>",
		Short: "Write the default config to a .toml, .yaml or .json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().Save(args[0]); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", args[0])
			return nil
		},
	}
}
