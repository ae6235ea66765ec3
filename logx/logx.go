// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx holds the logger shared by the grapher packages.
// Everything logs through [Logger]; an application installs its own
// handler with [SetLogger].
package logx

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// UserLevel is the minimum level written by the default logger.
// It can be changed at any time, including after [Logger] was called.
var UserLevel = new(slog.LevelVar)

var logger atomic.Pointer[slog.Logger]

func init() {
	UserLevel.Set(defaultUserLevel)
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

// SetLogger replaces the shared logger. Passing nil silences all output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// nopHandler drops every record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h nopHandler) WithGroup(string) slog.Handler { return h }
