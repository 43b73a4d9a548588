// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record in the
// form "LEVEL message key=value ...", with the level name colored
// according to the color profile of the output. Records below
// [UserLevel] are dropped, so changing UserLevel takes effect
// immediately for existing loggers.
type Handler struct {
	mu     *sync.Mutex
	out    io.Writer
	output *termenv.Output
	attrs  []slog.Attr
	group  string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Colors are only emitted when the writer is a terminal that supports them.
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: w, output: termenv.NewOutput(w)}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(h.levelString(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	for _, a := range h.attrs {
		h.writeAttr(&buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.group, a)
		return true
	})
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, key, ga)
		}
		return
	}
	fmt.Fprintf(buf, " %s=%v", key, a.Value)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}

// levelString returns the colored name of the given level.
func (h *Handler) levelString(level slog.Level) string {
	s := level.String()
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = h.output.Color("1") // red
	case level >= slog.LevelWarn:
		c = h.output.Color("3") // yellow
	case level >= slog.LevelInfo:
		c = h.output.Color("4") // blue
	default:
		c = h.output.Color("8") // gray
	}
	return h.output.String(s).Foreground(c).String()
}
