// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides [Log] and [Log1], which report an error to
// the shared logger and hand it back to the caller, and [New].
package errors

import (
	"errors"
	"runtime"
	"strconv"

	"cogentcore.org/grapher3d/logx"
)

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Log logs the given error if it is non-nil and returns it unchanged.
// The log record carries the file and line of the caller.
func Log(err error) error {
	if err != nil {
		logx.Logger().Error(err.Error(), "source", callerInfo())
	}
	return err
}

// Log1 logs the given error if it is non-nil and returns the value.
// It is meant to wrap a two-value call whose error can only be reported:
//
//	img := errors.Log1(decode(r))
func Log1[T any](v T, err error) T {
	if err != nil {
		logx.Logger().Error(err.Error(), "source", callerInfo())
	}
	return v
}

func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return file + ":" + strconv.Itoa(line)
}
