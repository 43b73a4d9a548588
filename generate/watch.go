// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/chessboard/config"
	"github.com/fsnotify/fsnotify"
)

// Debounce is how long [Watch] waits after the last change to the
// config file before regenerating, so that a burst of writes from
// an editor results in one run.
var Debounce = 100 * time.Millisecond

// Loader returns a freshly loaded config.
type Loader func() (*config.Config, error)

// Watch runs the generator once and then again every time the given
// config file is written or replaced, until ctx is done. Each run gets
// a new config from load. Failed runs are logged and do not stop the
// watch. The directory of the file is watched rather than the file
// itself, so that editors that save by renaming are handled.
func Watch(ctx context.Context, file string, load Loader) error {
	file, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("generate: watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("generate: watch %s: %w", file, err)
	}
	slog.Info("watching config", "file", file)
	reload(ctx, load)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("config changed", "file", file, "op", event.Op.String())
			pending = time.After(Debounce)
		case <-pending:
			pending = nil
			slog.Info("reloading config", "file", file)
			reload(ctx, load)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "file", file, "err", err)
		}
	}
}

func reload(ctx context.Context, load Loader) {
	cfg, err := load()
	if err == nil {
		err = Run(ctx, cfg)
	}
	if err != nil {
		slog.Error("generation failed", "err", err)
	}
}
