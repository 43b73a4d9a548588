// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides the YAML encoder and decoder functions for [iox].
package yamlx

import (
	"io"

	"cogentcore.org/chessboard/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder] for YAML.
func NewDecoder(r io.Reader) iox.Decoder {
	return yaml.NewDecoder(r)
}

// NewEncoder returns a new [iox.Encoder] for YAML,
// indenting nested values by two spaces.
func NewEncoder(w io.Writer) iox.Encoder {
	return &encoder{w: w}
}

// encoder closes the underlying yaml encoder after each value
// so that the whole document is flushed to the writer.
type encoder struct {
	w io.Writer
}

func (e *encoder) Encode(v any) error {
	ye := yaml.NewEncoder(e.w)
	ye.SetIndent(2)
	if err := ye.Encode(v); err != nil {
		return err
	}
	return ye.Close()
}
