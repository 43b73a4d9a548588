// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"testing"

	"cogentcore.org/chessboard/base/reflectx"
	"cogentcore.org/chessboard/board"
	"cogentcore.org/chessboard/math32"
	"cogentcore.org/chessboard/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	c := &Config{}
	require.NoError(t, reflectx.SetFromDefaultTags(c))
	return c
}

func TestDefaults(t *testing.T) {
	c := defaultConfig(t)
	assert.Equal(t, "-", c.Output)
	assert.Equal(t, scene.JSON, c.Format)
	assert.Equal(t, "us-east-1", c.S3.Region)
	assert.NoError(t, c.Validate())

	b := c.NewBoard()
	assert.Equal(t, &board.Board{
		Origin:   math32.Vec3(-8, 0, -8),
		Width:    16,
		Length:   16,
		TileSize: 0.5,
	}, b)
	assert.Equal(t, 1024, b.Count())
}

func TestValidate(t *testing.T) {
	c := defaultConfig(t)
	c.Format = "YAML"
	assert.NoError(t, c.Validate())
	assert.Equal(t, scene.YAML, c.Format)

	c.Format = "xml"
	c.Board.TileSize = 0
	c.Output = ""
	err := c.Validate()
	assert.ErrorContains(t, err, `unknown format "xml"`)
	assert.ErrorContains(t, err, "tile size must be positive")
	assert.ErrorContains(t, err, "output must not be empty")
}

func TestIncludesPtr(t *testing.T) {
	c := &Config{}
	*c.IncludesPtr() = []string{"base.toml"}
	assert.Equal(t, []string{"base.toml"}, c.Includes)
}

func TestValidateNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	c := defaultConfig(t)
	c.Board.Width = nan
	assert.ErrorContains(t, c.Validate(), "board width must be a finite number")

	c = defaultConfig(t)
	c.Board.Length = -inf
	assert.ErrorContains(t, c.Validate(), "board length must be a finite number")

	c = defaultConfig(t)
	c.Board.OriginY = nan
	assert.ErrorContains(t, c.Validate(), "board origin y must be a finite number")

	c = defaultConfig(t)
	c.Board.TileSize = inf
	assert.ErrorContains(t, c.Validate(), "board tile size must be a finite number")
}
