// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler writes records as "time level: message key=value ...".
type Handler struct {
	opts   slog.HandlerOptions
	mutex  *sync.Mutex
	out    io.Writer
	attrs  []slog.Attr
	prefix string
}

func newHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		opts:  *opts,
		mutex: &sync.Mutex{},
		out:   out,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var parts []string

	if timeAttr := h.replace(slog.Time(slog.TimeKey, r.Time)); !r.Time.IsZero() && !timeAttr.Equal(slog.Attr{}) {
		parts = append(parts, timeAttr.Value.String())
	}
	if levelAttr := h.replace(slog.Any(slog.LevelKey, r.Level)); !levelAttr.Equal(slog.Attr{}) {
		parts = append(parts, levelAttr.Value.String()+":")
	}
	if r.Message != "" {
		parts = append(parts, r.Message)
	}

	attrs := append([]slog.Attr{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		a.Key = h.prefix + a.Key
		attrs = append(attrs, a)
		return true
	})
	for _, a := range attrs {
		a = h.replace(a)
		if a.Equal(slog.Attr{}) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", a.Key, quoteIfNeeded(a.Value.String())))
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	_, err := io.WriteString(h.out, strings.Join(parts, " ")+"\n")
	return err
}

func (h *Handler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}
	return h.opts.ReplaceAttr(nil, a)
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
