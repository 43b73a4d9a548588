// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"bytes"
	"testing"

	"cogentcore.org/chessboard/math32"
	"cogentcore.org/chessboard/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantSpheres = []scene.Sphere{
	{Center: math32.Vec3(0, 0.5, -1), Radius: 0.5, Mat: scene.Lambertian{Albedo: math32.Vec3(0.1, 0.2, 0.5)}},
	{Center: math32.Vec3(1, 0.5, -1), Radius: 0.5, Mat: scene.Metal{Albedo: math32.Vec3(0.8, 0.6, 0.2), Fuzz: 0}},
	{Center: math32.Vec3(-1, 0.5, -1), Radius: 0.5, Mat: scene.Dielectric{RefIndex: 1.5}},
}

func TestNewScene(t *testing.T) {
	sizes := []struct{ width, length float32 }{{1, 1}, {0, 1}, {1, 0}, {16, 16}, {3, 0.5}}
	for _, sz := range sizes {
		b := New(math32.Vec3(-8, 0, -8), sz.width, sz.length)
		sc := NewScene(b)
		n := b.Count()

		assert.False(t, sc.Random)
		require.Equal(t, n+3, sc.Len())
		assert.Len(t, sc.Rectangles(), n)
		assert.Equal(t, wantSpheres, sc.Spheres())

		// tiles come first, spheres last
		for i, obj := range sc.Static {
			if i < n {
				assert.IsType(t, scene.Rectangle{}, obj)
			} else {
				assert.IsType(t, scene.Sphere{}, obj)
			}
		}
	}
}

func TestNewSceneSmall(t *testing.T) {
	sc := NewScene(New(math32.Vec3(0, 0, 0), 1, 1))
	assert.Equal(t, 7, sc.Len())
	sc = NewScene(New(math32.Vec3(0, 0, 0), 0, 1))
	assert.Equal(t, 3, sc.Len())
}

func TestDemoSpheresFresh(t *testing.T) {
	a := DemoSpheres()
	a[0] = nil
	assert.NotNil(t, DemoSpheres()[0])
}

func TestSceneRoundTrip(t *testing.T) {
	sc := NewScene(New(math32.Vec3(-8, 0, -8), 16, 16))
	for _, f := range []scene.Formats{scene.JSON, scene.YAML} {
		var buf bytes.Buffer
		require.NoError(t, scene.Write(sc, &buf, f))
		got, err := scene.Read(&buf, f)
		require.NoError(t, err)
		assert.Equal(t, sc, got)
	}
}

func TestSceneDocument(t *testing.T) {
	b, err := scene.Encode(NewScene(New(math32.Vec3(0, 0, 0), 1, 1)), scene.JSON)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"random": false`)
	assert.Equal(t, 4, bytes.Count(b, []byte(`"type": "rectangle"`)))
	assert.Equal(t, 3, bytes.Count(b, []byte(`"type": "sphere"`)))
	assert.Equal(t, 5, bytes.Count(b, []byte(`"type": "metal"`)))
	assert.Equal(t, 1, bytes.Count(b, []byte(`"type": "lambertian"`)))
	assert.Equal(t, 1, bytes.Count(b, []byte(`"type": "dielectric"`)))
}
