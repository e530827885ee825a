package render

import (
	"io"
	"net/http"

	"github.com/vango-dev/gallery/pkg/vdom"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte and lets
// late content replace a placeholder through a named slot.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       *errWriter
}

// NewStreamingRenderer creates a streaming renderer that writes to w. If
// w implements http.Flusher, content is flushed after each step.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        &errWriter{w: w},
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	s.Begin(page)
	s.Write(page.Body)
	return s.End(page)
}

// Begin writes the document head and opening body tag and flushes.
func (s *StreamingRenderer) Begin(page PageData) error {
	s.openDocument(s.w, page)
	s.flush()
	return s.w.err
}

// Write renders node into the body and flushes.
func (s *StreamingRenderer) Write(node *vdom.VNode) error {
	s.renderNode(s.w, node, 0)
	s.flush()
	return s.w.err
}

// Fill streams node into a template bound to slot. The client script swaps
// it in for the element carrying data-slot="<slot>".
func (s *StreamingRenderer) Fill(slot string, node *vdom.VNode) error {
	s.w.WriteString(`<template data-fill="` + escapeAttr(slot) + `">`)
	s.renderNode(s.w, node, 0)
	s.w.WriteString("</template>\n")
	s.flush()
	return s.w.err
}

// End writes the client script and closing tags and flushes.
func (s *StreamingRenderer) End(page PageData) error {
	s.closeDocument(s.w, page)
	s.flush()
	return s.w.err
}

// Err returns the first write error encountered.
func (s *StreamingRenderer) Err() error {
	return s.w.err
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil && s.w.err == nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with a flush counter for tests.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
