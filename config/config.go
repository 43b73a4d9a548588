// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the chessboard tool.
package config

import (
	"fmt"

	"cogentcore.org/chessboard/base/errors"
	"cogentcore.org/chessboard/board"
	"cogentcore.org/chessboard/math32"
	"cogentcore.org/chessboard/scene"
)

// Config is the main config struct that contains all of the
// configuration options for the chessboard tool. Values are set
// from the `default:` tags first, then from a TOML config file,
// and finally from command line flags.
type Config struct {

	// Includes are other config files to load before this one,
	// so that this file overrides settings in the included ones.
	Includes []string

	// Output is where to write the scene document: "-" for standard output,
	// an s3://bucket/key URL, or a file path.
	Output string `default:"-"`

	// Format is the encoding of the scene document: json or yaml.
	Format scene.Formats `default:"json"`

	// Board is the checkerboard footprint.
	Board Board

	// S3 contains the settings for s3:// outputs.
	S3 S3

	// Verbose shows info messages.
	Verbose bool

	// VeryVerbose shows debug messages.
	VeryVerbose bool

	// Quiet only shows errors.
	Quiet bool
}

// Board is the footprint of the checkerboard.
type Board struct {

	// OriginX is the x coordinate of the minimum corner.
	OriginX float32 `default:"-8"`

	// OriginY is the height of the board.
	OriginY float32 `default:"0"`

	// OriginZ is the z coordinate of the minimum corner.
	OriginZ float32 `default:"-8"`

	// Width is the extent of the board along x.
	Width float32 `default:"16"`

	// Length is the extent of the board along z.
	Length float32 `default:"16"`

	// TileSize is the edge length of each square tile.
	TileSize float32 `default:"0.5"`
}

// S3 contains the settings for writing the document to S3.
// Credentials come from the standard AWS environment and files.
type S3 struct {

	// Region is the AWS region of the bucket.
	Region string `default:"us-east-1"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string
}

// IncludesPtr returns a pointer to the Includes field,
// for loading included config files.
func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// Origin returns the board origin as a vector.
func (b *Board) Origin() math32.Vector3 {
	return math32.Vec3(b.OriginX, b.OriginY, b.OriginZ)
}

// NewBoard returns the [board.Board] described by the config.
func (c *Config) NewBoard() *board.Board {
	b := board.New(c.Board.Origin(), c.Board.Width, c.Board.Length)
	b.TileSize = c.Board.TileSize
	return b
}

// Validate checks the config for values that can not produce a
// document, normalizing the format name.
func (c *Config) Validate() error {
	var errs []error
	f, err := scene.ParseFormat(string(c.Format))
	if err != nil {
		errs = append(errs, err)
	} else {
		c.Format = f
	}
	for _, v := range []struct {
		name string
		val  float32
	}{
		{"origin x", c.Board.OriginX}, {"origin y", c.Board.OriginY}, {"origin z", c.Board.OriginZ},
		{"width", c.Board.Width}, {"length", c.Board.Length}, {"tile size", c.Board.TileSize},
	} {
		if !math32.IsFinite(v.val) {
			errs = append(errs, fmt.Errorf("config: board %s must be a finite number, got %g", v.name, v.val))
		}
	}
	if c.Board.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("config: tile size must be positive, got %g", c.Board.TileSize))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("config: output must not be empty (use - for standard output)"))
	}
	return errors.Join(errs...)
}
