// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package board generates a checkerboard floor of square tiles and
// assembles it with a fixed set of demonstration spheres into a
// [scene.Scene].
package board

import (
	"log/slog"

	"cogentcore.org/chessboard/math32"
	"cogentcore.org/chessboard/scene"
)

// DefaultTileSize is the edge length of a tile used by [New].
const DefaultTileSize = 0.5

// Tile colors, as 8-bit grayscale channel values. Flipping between
// them is an XOR with White.
const (
	White = 0xFF
	Black = 0x00
)

// Board is a rectangular footprint on the y = Origin.Y plane that is
// covered with alternating white and black square tiles.
// Coordinates are float32, so origins and tile sizes that are not
// exactly representable (such as -8.1) give tile corners with float32
// rounding, for example -7.6000004.
type Board struct {
	// Origin is the minimum corner of the footprint.
	Origin math32.Vector3

	// Width is the extent of the footprint along x.
	Width float32

	// Length is the extent of the footprint along z.
	Length float32

	// TileSize is the edge length of each square tile.
	TileSize float32
}

// New returns a new board with the given origin and extents,
// using [DefaultTileSize].
func New(origin math32.Vector3, width, length float32) *Board {
	return &Board{Origin: origin, Width: width, Length: length, TileSize: DefaultTileSize}
}

// Count returns the number of tiles that [Board.Tiles] generates:
// the number of columns times the number of rows, each rounded up
// because partial tiles at the far edges are emitted whole.
func (b *Board) Count() int {
	if !b.valid() || b.Width <= 0 || b.Length <= 0 {
		return 0
	}
	return int(math32.Ceil(b.Width/b.TileSize)) * int(math32.Ceil(b.Length/b.TileSize))
}

// valid reports whether the board has a positive tile size and
// finite values throughout, which the tile walk needs to terminate.
func (b *Board) valid() bool {
	return b.TileSize > 0 && math32.IsFinite(b.TileSize) && b.Origin.IsFinite() &&
		math32.IsFinite(b.Width) && math32.IsFinite(b.Length)
}

// at returns the coordinate of the i-th tile edge from start.
func (b *Board) at(start float32, i int) float32 {
	return start + float32(i)*b.TileSize
}

// Tiles returns the tiles of the board in row-major order: rows go
// along z starting at Origin.Z and each row goes along x starting
// at Origin.X. The tile at the origin is white, and every tile
// differs in color from its neighbors along both x and z, since the
// starting color flips for every row as well as for every tile.
//
// Tiles are not clipped: if Width or Length is not a multiple of
// TileSize, the last column or row extends past the footprint.
// A non-positive Width or Length gives no tiles. A non-positive
// TileSize or a NaN or infinite value gives no tiles and a warning.
//
// Each tile is a [scene.Rectangle] with A at the tile corner, W at the
// next corner along x (an absolute point), and H the offset (0, 0, TileSize)
// along z, made of a mirror [scene.Metal] with a white or black albedo.
func (b *Board) Tiles() []scene.Rectangle {
	if !b.valid() {
		slog.Warn("board: tile size must be positive and all values finite, no tiles generated",
			"origin", b.Origin.String(), "width", b.Width, "length", b.Length, "tileSize", b.TileSize)
		return nil
	}
	tiles := make([]scene.Rectangle, 0, b.Count())
	h := math32.Vec3(0, 0, b.TileSize)
	endX := b.Origin.X + b.Width
	endZ := b.Origin.Z + b.Length
	rowColor := White
	for row := 0; b.at(b.Origin.Z, row) < endZ; row++ {
		z := b.at(b.Origin.Z, row)
		color := rowColor
		for col := 0; b.at(b.Origin.X, col) < endX; col++ {
			a := math32.Vec3(b.at(b.Origin.X, col), b.Origin.Y, z)
			tiles = append(tiles, scene.Rectangle{
				A:   a,
				W:   a.Add(math32.Vec3(b.TileSize, 0, 0)),
				H:   h,
				Mat: scene.NewMetal(scene.Gray(color), 0),
			})
			color ^= White
		}
		rowColor ^= White
	}
	return tiles
}
