// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug && !release

package logx

import "log/slog"

// defaultUserLevel is Info in regular builds; the debug and release
// build tags lower and raise it respectively.
var defaultUserLevel = slog.LevelInfo
