// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chessboard generates the checkerboard demo scene
// document for the ray tracer.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/chessboard/cmd/chessboard/cmd"
	"cogentcore.org/chessboard/logx"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}
