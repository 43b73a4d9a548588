// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"cogentcore.org/chessboard/math32"
	"cogentcore.org/chessboard/scene"
)

// DemoSpheres returns the three demonstration spheres that sit on the
// board, in order: a diffuse blue sphere in the middle, a gold mirror
// to its right, and a glass sphere to its left.
func DemoSpheres() []scene.Object {
	return []scene.Object{
		scene.Sphere{
			Center: math32.Vec3(0, 0.5, -1),
			Radius: 0.5,
			Mat:    scene.NewLambertian(math32.Vec3(0.1, 0.2, 0.5)),
		},
		scene.Sphere{
			Center: math32.Vec3(1, 0.5, -1),
			Radius: 0.5,
			Mat:    scene.NewMetal(math32.Vec3(0.8, 0.6, 0.2), 0),
		},
		scene.Sphere{
			Center: math32.Vec3(-1, 0.5, -1),
			Radius: 0.5,
			Mat:    scene.NewDielectric(1.5),
		},
	}
}

// NewScene returns a new non-random scene with the tiles of the given
// board followed by the [DemoSpheres].
func NewScene(b *Board) *scene.Scene {
	tiles := b.Tiles()
	spheres := DemoSpheres()
	objs := make([]scene.Object, 0, len(tiles)+len(spheres))
	for _, t := range tiles {
		objs = append(objs, t)
	}
	objs = append(objs, spheres...)
	return &scene.Scene{Random: false, Static: objs}
}
