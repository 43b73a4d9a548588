// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/chessboard/base/iox"
	"cogentcore.org/chessboard/base/iox/jsonx"
	"cogentcore.org/chessboard/base/iox/yamlx"
)

// Formats are the supported encodings of the scene document.
type Formats string

const (
	// JSON is the format read by the renderer, indented for readability.
	JSON Formats = "json"

	// YAML is the same document in YAML form, for inspection.
	YAML Formats = "yaml"
)

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(s string) (Formats, error) {
	switch f := Formats(strings.ToLower(s)); f {
	case JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("scene: unknown format %q (must be %q or %q)", s, JSON, YAML)
}

// FormatFromFilename returns the format implied by the extension
// of the given file name.
func FormatFromFilename(filename string) (Formats, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "", fmt.Errorf("scene: no format extension on %q", filename)
	}
	return ParseFormat(ext)
}

// ContentType returns the media type of documents in the format.
func (f Formats) ContentType() string {
	if f == YAML {
		return "application/yaml"
	}
	return "application/json"
}

func (f Formats) encoder() (iox.EncoderFunc, error) {
	switch f {
	case JSON:
		return jsonx.NewIndentEncoder, nil
	case YAML:
		return yamlx.NewEncoder, nil
	}
	return nil, fmt.Errorf("scene: unknown format %q", f)
}

func (f Formats) decoder() (iox.DecoderFunc, error) {
	switch f {
	case JSON:
		return jsonx.NewDecoder, nil
	case YAML:
		return yamlx.NewDecoder, nil
	}
	return nil, fmt.Errorf("scene: unknown format %q", f)
}

// Write writes the scene document to the given writer in the given format.
// Encoding is deterministic: the same scene always gives the same bytes.
func Write(sc *Scene, w io.Writer, f Formats) error {
	enc, err := f.encoder()
	if err != nil {
		return err
	}
	return iox.Write(sc, w, enc)
}

// Encode returns the scene document in the given format.
func Encode(sc *Scene, f Formats) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(sc, &b, f); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Read reads a scene document in the given format from the given reader.
func Read(r io.Reader, f Formats) (*Scene, error) {
	dec, err := f.decoder()
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	if err := iox.Read(sc, r, dec); err != nil {
		return nil, err
	}
	return sc, nil
}

// Open reads a scene document from the given file, with the format
// determined by the file extension.
func Open(filename string) (*Scene, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	dec, err := f.decoder()
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	if err := iox.Open(sc, filename, dec); err != nil {
		return nil, err
	}
	return sc, nil
}

// Save writes the scene document to the given file, with the format
// determined by the file extension.
func Save(sc *Scene, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	enc, err := f.encoder()
	if err != nil {
		return err
	}
	return iox.Save(sc, filename, enc)
}
