// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the geometry and material model of a scene
// description for a ray tracing renderer, and its serialization to
// the document format that the renderer reads.
//
// A scene is a list of static objects (rectangles and spheres), each
// made of one of the materials [Metal], [Lambertian] or [Dielectric].
// Values are plain data: they are built once, serialized, and never
// modified afterwards.
package scene

// Scene is a complete scene description.
type Scene struct {
	// Random tells the renderer to generate a random scene of its own
	// instead of using Static. Generated scenes always set it to false.
	Random bool

	// Static is the list of objects, in render order.
	Static []Object
}

// New returns a new static (non-random) scene with the given objects.
func New(objs ...Object) *Scene {
	return &Scene{Static: objs}
}

// Add appends the given objects to the scene.
func (sc *Scene) Add(objs ...Object) {
	sc.Static = append(sc.Static, objs...)
}

// Len returns the number of objects in the scene.
func (sc *Scene) Len() int {
	return len(sc.Static)
}

// Rectangles returns the rectangles in the scene, in order.
func (sc *Scene) Rectangles() []Rectangle {
	var rs []Rectangle
	for _, obj := range sc.Static {
		if r, ok := obj.(Rectangle); ok {
			rs = append(rs, r)
		}
	}
	return rs
}

// Spheres returns the spheres in the scene, in order.
func (sc *Scene) Spheres() []Sphere {
	var ss []Sphere
	for _, obj := range sc.Static {
		if s, ok := obj.(Sphere); ok {
			ss = append(ss, s)
		}
	}
	return ss
}
