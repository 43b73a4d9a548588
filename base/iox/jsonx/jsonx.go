// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides the JSON encoder and decoder functions
// for [iox], including indented output for human-readable files.
package jsonx

import (
	"encoding/json"
	"io"

	"cogentcore.org/chessboard/base/iox"
)

// Indent is the indentation used by [NewIndentEncoder].
const Indent = "    "

// NewDecoder returns a new [iox.Decoder] for JSON.
func NewDecoder(r io.Reader) iox.Decoder {
	return json.NewDecoder(r)
}

// NewIndentEncoder returns a new [iox.Encoder] for JSON
// that indents nested values with [Indent].
func NewIndentEncoder(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", Indent)
	return e
}
