// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generate builds the checkerboard scene described by a
// [config.Config] and publishes its document.
package generate

import (
	"context"
	"log/slog"

	"cogentcore.org/chessboard/board"
	"cogentcore.org/chessboard/config"
	"cogentcore.org/chessboard/publish"
	"cogentcore.org/chessboard/scene"
)

// Run validates the given config, builds its scene, encodes the scene
// in the configured format, and publishes it to the configured output.
func Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b := cfg.NewBoard()
	sc := board.NewScene(b)
	data, err := scene.Encode(sc, cfg.Format)
	if err != nil {
		return err
	}
	p, err := publish.New(cfg.Output, publish.Options{
		ContentType: cfg.Format.ContentType(),
		Region:      cfg.S3.Region,
		Endpoint:    cfg.S3.Endpoint,
	})
	if err != nil {
		return err
	}
	if err := p.Publish(ctx, data); err != nil {
		return err
	}
	slog.Info("generated scene", "tiles", b.Count(), "objects", sc.Len(), "format", cfg.Format, "dest", p.String())
	return nil
}
