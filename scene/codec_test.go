// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/chessboard/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() *Scene {
	return New(
		Rectangle{
			A:   math32.Vec3(0, 0, 0),
			W:   math32.Vec3(0.5, 0, 0),
			H:   math32.Vec3(0, 0, 0.5),
			Mat: NewMetal(Gray(0xFF), 0),
		},
		Sphere{
			Center: math32.Vec3(0, 0.5, -1),
			Radius: 0.5,
			Mat:    NewLambertian(math32.Vec3(0.1, 0.2, 0.5)),
		},
		Sphere{
			Center: math32.Vec3(-1, 0.5, -1),
			Radius: 0.5,
			Mat:    NewDielectric(1.5),
		},
	)
}

const testSceneJSON = `{
    "random": false,
    "static": [
        {
            "type": "rectangle",
            "a": {
                "x": 0,
                "y": 0,
                "z": 0
            },
            "w": {
                "x": 0.5,
                "y": 0,
                "z": 0
            },
            "h": {
                "x": 0,
                "y": 0,
                "z": 0.5
            },
            "mat": {
                "type": "metal",
                "albedo": {
                    "x": 1,
                    "y": 1,
                    "z": 1
                },
                "fuzz": 0
            }
        },
        {
            "type": "sphere",
            "center": {
                "x": 0,
                "y": 0.5,
                "z": -1
            },
            "radius": 0.5,
            "mat": {
                "type": "lambertian",
                "albedo": {
                    "x": 0.1,
                    "y": 0.2,
                    "z": 0.5
                }
            }
        },
        {
            "type": "sphere",
            "center": {
                "x": -1,
                "y": 0.5,
                "z": -1
            },
            "radius": 0.5,
            "mat": {
                "type": "dielectric",
                "refindex": 1.5
            }
        }
    ]
}
`

func TestEncodeJSON(t *testing.T) {
	b, err := Encode(testScene(), JSON)
	require.NoError(t, err)
	assert.Equal(t, testSceneJSON, string(b))

	// deterministic output
	b2, err := Encode(testScene(), JSON)
	require.NoError(t, err)
	assert.Equal(t, b, b2)
}

func TestEncodeEmpty(t *testing.T) {
	b, err := json.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, `{"random":false,"static":[]}`, string(b))
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Formats{JSON, YAML} {
		t.Run(string(f), func(t *testing.T) {
			sc := testScene()
			b, err := Encode(sc, f)
			require.NoError(t, err)
			got, err := Read(bytes.NewReader(b), f)
			require.NoError(t, err)
			assert.Equal(t, sc, got)
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	sc := New(Sphere{Center: math32.Vec3(1, 0.5, -1), Radius: 0.5, Mat: NewMetal(math32.Vec3(0.8, 0.6, 0.2), 0)})
	b, err := Encode(sc, YAML)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "random: false\nstatic:\n"))
	assert.Contains(t, s, "type: sphere")
	assert.Contains(t, s, "radius: 0.5")
	assert.Contains(t, s, "fuzz: 0")
	assert.NotContains(t, s, "refindex")
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  string
	}{
		{"syntax", `{"static": [`, "unexpected EOF"},
		{"unknown object", `{"static": [{"type": "cone", "mat": {"type": "dielectric", "refindex": 1}}]}`, `unknown object type "cone"`},
		{"unknown material", `{"static": [{"type": "sphere", "center": {"x": 0, "y": 0, "z": 0}, "radius": 1, "mat": {"type": "glass"}}]}`, `unknown material type "glass"`},
		{"no material", `{"static": [{"type": "sphere", "center": {"x": 0, "y": 0, "z": 0}, "radius": 1}]}`, `missing field "mat"`},
		{"no radius", `{"static": [{"type": "sphere", "center": {"x": 0, "y": 0, "z": 0}, "mat": {"type": "dielectric", "refindex": 1}}]}`, `missing field "radius"`},
		{"no h", `{"static": [{"type": "rectangle", "a": {"x": 0, "y": 0, "z": 0}, "w": {"x": 0, "y": 0, "z": 0}, "mat": {"type": "lambertian", "albedo": {"x": 0, "y": 0, "z": 0}}}]}`, `missing field "h"`},
		{"no albedo", `{"static": [{"type": "sphere", "center": {"x": 0, "y": 0, "z": 0}, "radius": 1, "mat": {"type": "metal", "fuzz": 0}}]}`, `missing field "albedo"`},
		{"no refindex", `{"static": [{"type": "sphere", "center": {"x": 0, "y": 0, "z": 0}, "radius": 1, "mat": {"type": "dielectric"}}]}`, `missing field "refindex"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc), JSON)
			assert.ErrorContains(t, err, tt.err)
		})
	}
}

func TestDecodeStaticIndex(t *testing.T) {
	doc := `{"random": false, "static": [
		{"type": "sphere", "center": {"x": 0, "y": 0, "z": 0}, "radius": 1, "mat": {"type": "dielectric", "refindex": 1.5}},
		{"type": "box", "mat": {"type": "dielectric", "refindex": 1.5}}]}`
	_, err := Read(strings.NewReader(doc), JSON)
	assert.ErrorContains(t, err, "static[1]")
}

func TestDecodeOptionalFuzz(t *testing.T) {
	doc := `{"random": true, "static": [{"type": "sphere", "center": {"x": 0, "y": 0, "z": 0}, "radius": 2, "mat": {"type": "metal", "albedo": {"x": 1, "y": 1, "z": 1}}}]}`
	sc, err := Read(strings.NewReader(doc), JSON)
	require.NoError(t, err)
	assert.True(t, sc.Random)
	assert.Equal(t, []Sphere{{Radius: 2, Mat: NewMetal(Gray(255), 0)}}, sc.Spheres())
}

func TestEncodeMissingMaterial(t *testing.T) {
	_, err := Encode(New(Sphere{Radius: 1}), JSON)
	assert.ErrorContains(t, err, "missing material")
}

func TestFormats(t *testing.T) {
	f, err := ParseFormat("JSON")
	assert.NoError(t, err)
	assert.Equal(t, JSON, f)
	f, err = FormatFromFilename("scene.yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatFromFilename("scene")
	assert.Error(t, err)
	_, err = ParseFormat("toml")
	assert.Error(t, err)
	_, err = Encode(testScene(), Formats("xml"))
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scene.json", "scene.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(testScene(), fn))
		sc, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, testScene(), sc)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", JSON.ContentType())
	assert.Equal(t, "application/yaml", YAML.ContentType())
}
