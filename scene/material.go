// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/chessboard/math32"

// MaterialTypes are the material type tags used in the scene document.
type MaterialTypes string

const (
	// MetalType is the tag for [Metal] materials.
	MetalType MaterialTypes = "metal"

	// LambertianType is the tag for [Lambertian] materials.
	LambertianType MaterialTypes = "lambertian"

	// DielectricType is the tag for [Dielectric] materials.
	DielectricType MaterialTypes = "dielectric"
)

// Material is the surface material of an [Object]. It is a closed set:
// the only implementations are [Metal], [Lambertian] and [Dielectric].
type Material interface {
	// MaterialType returns the document tag for this material.
	MaterialType() MaterialTypes

	isMaterial()
}

// Metal is a reflective material. A Fuzz of 0 is a perfect mirror,
// and larger values up to 1 blur the reflection.
type Metal struct {
	// Albedo is the RGB reflectance, with each component in [0, 1].
	Albedo math32.Vector3

	// Fuzz is the roughness of the reflection, in [0, 1].
	Fuzz float32
}

// Lambertian is an ideal diffuse material.
type Lambertian struct {
	// Albedo is the RGB reflectance, with each component in [0, 1].
	Albedo math32.Vector3
}

// Dielectric is a transparent refractive material such as glass.
type Dielectric struct {
	// RefIndex is the refractive index, which must be positive.
	RefIndex float32
}

// NewMetal returns a new [Metal] material.
func NewMetal(albedo math32.Vector3, fuzz float32) Metal {
	return Metal{Albedo: albedo, Fuzz: fuzz}
}

// NewLambertian returns a new [Lambertian] material.
func NewLambertian(albedo math32.Vector3) Lambertian {
	return Lambertian{Albedo: albedo}
}

// NewDielectric returns a new [Dielectric] material.
func NewDielectric(refIndex float32) Dielectric {
	return Dielectric{RefIndex: refIndex}
}

func (Metal) MaterialType() MaterialTypes      { return MetalType }
func (Lambertian) MaterialType() MaterialTypes { return LambertianType }
func (Dielectric) MaterialType() MaterialTypes { return DielectricType }

func (Metal) isMaterial()      {}
func (Lambertian) isMaterial() {}
func (Dielectric) isMaterial() {}

// Albedo returns the albedo for the given 8-bit red, green and blue
// channel values, each divided by 255. Channel values are expected to
// be in [0, 255]; values outside that range are not checked and give
// an albedo outside [0, 1].
func Albedo(r, g, b int) math32.Vector3 {
	return math32.Vec3(float32(r)/255, float32(g)/255, float32(b)/255)
}

// Gray returns the grayscale albedo for the given 8-bit channel value.
func Gray(c int) math32.Vector3 {
	return Albedo(c, c, c)
}
