// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/grapher3d/base/errors"
	"cogentcore.org/grapher3d/logx"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the new config every time the file at path is
// written, until ctx is done. Files that fail to decode are logged and
// skipped. The directory is watched so editors that replace the file
// are handled.
func Watch(ctx context.Context, path string, fn func(c *Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				c, err := Open(abs)
				if errors.Log(err) != nil {
					continue
				}
				logx.Logger().Debug("config reloaded", slog.String("path", abs))
				fn(c)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}
