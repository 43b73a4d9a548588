// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/chessboard/math32"

// ObjectTypes are the object type tags used in the scene document.
type ObjectTypes string

const (
	// RectangleType is the tag for [Rectangle] objects.
	RectangleType ObjectTypes = "rectangle"

	// SphereType is the tag for [Sphere] objects.
	SphereType ObjectTypes = "sphere"
)

// Object is a primitive shape in a [Scene]. It is a closed set:
// the only implementations are [Rectangle] and [Sphere].
type Object interface {
	// ObjectType returns the document tag for this object.
	ObjectType() ObjectTypes

	// Material returns the material the object is made of.
	Material() Material

	isObject()
}

// Rectangle is a planar quadrilateral, described the way the renderer
// builds it out of two triangles:
//
//	A+H ------------ W+H
//	 |                |
//	 A -------------- W
//
// A and W are two corner points (absolute positions), while H is an
// offset vector that is added to both of them to get the remaining
// corners. H is expected to be perpendicular to W-A; nothing enforces
// that, so a skewed H gives a parallelogram.
type Rectangle struct {
	// A is the first corner.
	A math32.Vector3

	// W is the second corner, along the first edge from A.
	W math32.Vector3

	// H is the offset from A and W to the opposite edge.
	H math32.Vector3

	// Mat is the material of the rectangle.
	Mat Material
}

// Sphere is a sphere with the given center and radius.
type Sphere struct {
	Center math32.Vector3

	// Radius must be positive.
	Radius float32

	Mat Material
}

func (Rectangle) ObjectType() ObjectTypes { return RectangleType }
func (Sphere) ObjectType() ObjectTypes    { return SphereType }

func (r Rectangle) Material() Material { return r.Mat }
func (s Sphere) Material() Material    { return s.Mat }

func (Rectangle) isObject() {}
func (Sphere) isObject()    {}

// Corners returns the four corners of the rectangle in order
// A, W, W+H, A+H.
func (r Rectangle) Corners() [4]math32.Vector3 {
	return [4]math32.Vector3{r.A, r.W, r.W.Add(r.H), r.A.Add(r.H)}
}
