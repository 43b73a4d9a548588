// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and a colored
// [slog.Handler] for command line tools.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set from command line flags through [LevelFromFlags]. The default
// user verbosity level is [slog.LevelWarn] (debug builds use
// [slog.LevelDebug] and release builds [slog.LevelError]).
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to a [Handler] writing to
// [os.Stderr] that shows messages at or above [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// PrintlnError is equivalent to [fmt.Fprintln] to [os.Stderr]. Errors
// are shown at every [UserLevel].
func PrintlnError(a ...any) (n int, err error) {
	return println(slog.LevelError, a...)
}

// PrintlnInfo is equivalent to [fmt.Fprintln] to [os.Stderr], but it only
// prints if [UserLevel] is [slog.LevelInfo] or lower.
func PrintlnInfo(a ...any) (n int, err error) {
	return println(slog.LevelInfo, a...)
}

func println(level slog.Level, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Fprintln(os.Stderr, a...)
}
