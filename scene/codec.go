// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/json"
	"fmt"

	"cogentcore.org/chessboard/base/errors"
	"cogentcore.org/chessboard/math32"
	"gopkg.in/yaml.v3"
)

// document is the wire form of a [Scene]. Field order here is the
// field order of the output, and must stay:
//
//	{"random", "static"}
//	rectangle: {"type", "a", "w", "h", "mat"}
//	sphere:    {"type", "center", "radius", "mat"}
//	metal:      {"type", "albedo", "fuzz"}
//	lambertian: {"type", "albedo"}
//	dielectric: {"type", "refindex"}
type document struct {
	Random bool         `json:"random" yaml:"random"`
	Static []wireObject `json:"static" yaml:"static"`
}

type wireObject struct {
	Type   ObjectTypes     `json:"type" yaml:"type"`
	A      *math32.Vector3 `json:"a,omitempty" yaml:"a,omitempty"`
	W      *math32.Vector3 `json:"w,omitempty" yaml:"w,omitempty"`
	H      *math32.Vector3 `json:"h,omitempty" yaml:"h,omitempty"`
	Center *math32.Vector3 `json:"center,omitempty" yaml:"center,omitempty"`
	Radius *float32        `json:"radius,omitempty" yaml:"radius,omitempty"`
	Mat    *wireMaterial   `json:"mat,omitempty" yaml:"mat,omitempty"`
}

type wireMaterial struct {
	Type     MaterialTypes   `json:"type" yaml:"type"`
	Albedo   *math32.Vector3 `json:"albedo,omitempty" yaml:"albedo,omitempty"`
	Fuzz     *float32        `json:"fuzz,omitempty" yaml:"fuzz,omitempty"`
	RefIndex *float32        `json:"refindex,omitempty" yaml:"refindex,omitempty"`
}

// toDocument converts the scene to its wire form. It fails only for
// objects without a material, which the renderer can not use.
func (sc Scene) toDocument() (*document, error) {
	doc := &document{Random: sc.Random, Static: make([]wireObject, 0, len(sc.Static))}
	for i, obj := range sc.Static {
		var wo wireObject
		switch o := obj.(type) {
		case Rectangle:
			wo = wireObject{Type: RectangleType, A: &o.A, W: &o.W, H: &o.H}
		case Sphere:
			wo = wireObject{Type: SphereType, Center: &o.Center, Radius: &o.Radius}
		default:
			return nil, fmt.Errorf("scene: static[%d]: unsupported object %T", i, obj)
		}
		mat, err := materialToWire(obj.Material())
		if err != nil {
			return nil, fmt.Errorf("scene: static[%d] (%s): %w", i, wo.Type, err)
		}
		wo.Mat = mat
		doc.Static = append(doc.Static, wo)
	}
	return doc, nil
}

func materialToWire(mat Material) (*wireMaterial, error) {
	switch m := mat.(type) {
	case Metal:
		return &wireMaterial{Type: MetalType, Albedo: &m.Albedo, Fuzz: &m.Fuzz}, nil
	case Lambertian:
		return &wireMaterial{Type: LambertianType, Albedo: &m.Albedo}, nil
	case Dielectric:
		return &wireMaterial{Type: DielectricType, RefIndex: &m.RefIndex}, nil
	case nil:
		return nil, errors.New("missing material")
	default:
		return nil, fmt.Errorf("unsupported material %T", mat)
	}
}

// fromDocument sets the scene from its wire form, checking that every
// object and material has a known type and all of its fields.
func (sc *Scene) fromDocument(doc *document) error {
	objs := make([]Object, 0, len(doc.Static))
	for i, wo := range doc.Static {
		obj, err := wo.object()
		if err != nil {
			return fmt.Errorf("scene: static[%d]: %w", i, err)
		}
		objs = append(objs, obj)
	}
	sc.Random = doc.Random
	sc.Static = objs
	return nil
}

func (wo *wireObject) object() (Object, error) {
	if wo.Mat == nil {
		return nil, fmt.Errorf("%s: missing field %q", wo.Type, "mat")
	}
	mat, err := wo.Mat.material()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", wo.Type, err)
	}
	switch wo.Type {
	case RectangleType:
		if err := missing(wo.Type, "a", wo.A, "w", wo.W, "h", wo.H); err != nil {
			return nil, err
		}
		return Rectangle{A: *wo.A, W: *wo.W, H: *wo.H, Mat: mat}, nil
	case SphereType:
		if err := missing(wo.Type, "center", wo.Center); err != nil {
			return nil, err
		}
		if wo.Radius == nil {
			return nil, fmt.Errorf("%s: missing field %q", wo.Type, "radius")
		}
		return Sphere{Center: *wo.Center, Radius: *wo.Radius, Mat: mat}, nil
	default:
		return nil, fmt.Errorf("unknown object type %q", wo.Type)
	}
}

func (wm *wireMaterial) material() (Material, error) {
	switch wm.Type {
	case MetalType:
		if err := missing(wm.Type, "albedo", wm.Albedo); err != nil {
			return nil, err
		}
		m := Metal{Albedo: *wm.Albedo}
		if wm.Fuzz != nil {
			m.Fuzz = *wm.Fuzz
		}
		return m, nil
	case LambertianType:
		if err := missing(wm.Type, "albedo", wm.Albedo); err != nil {
			return nil, err
		}
		return Lambertian{Albedo: *wm.Albedo}, nil
	case DielectricType:
		if wm.RefIndex == nil {
			return nil, fmt.Errorf("%s: missing field %q", wm.Type, "refindex")
		}
		return Dielectric{RefIndex: *wm.RefIndex}, nil
	default:
		return nil, fmt.Errorf("unknown material type %q", wm.Type)
	}
}

// missing returns an error for the first nil vector in the given
// name, value pairs.
func missing[T ~string](typ T, pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if v, ok := pairs[i+1].(*math32.Vector3); ok && v == nil {
			return fmt.Errorf("%s: missing field %q", typ, pairs[i])
		}
	}
	return nil
}

// MarshalJSON encodes the scene in the renderer document format.
func (sc Scene) MarshalJSON() ([]byte, error) {
	doc, err := sc.toDocument()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes the scene from the renderer document format.
func (sc *Scene) UnmarshalJSON(b []byte) error {
	doc := &document{}
	if err := json.Unmarshal(b, doc); err != nil {
		return err
	}
	return sc.fromDocument(doc)
}

// MarshalYAML encodes the scene as the renderer document in YAML form.
func (sc Scene) MarshalYAML() (any, error) {
	return sc.toDocument()
}

// UnmarshalYAML decodes the scene from the renderer document in YAML form.
func (sc *Scene) UnmarshalYAML(value *yaml.Node) error {
	doc := &document{}
	if err := value.Decode(doc); err != nil {
		return err
	}
	return sc.fromDocument(doc)
}
