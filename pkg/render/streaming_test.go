package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/gallery/pkg/vdom"
)

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}
	sr := NewStreamingRenderer(fw, RendererConfig{})

	if err := sr.RenderPage(PageData{Title: "T", Body: vdom.Div(vdom.Text("x"))}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fw.FlushCount != 3 {
		t.Errorf("FlushCount = %d, want 3", fw.FlushCount)
	}
	if !strings.Contains(buf.String(), "<div>x</div>") {
		t.Errorf("body missing: %s", buf.String())
	}
}

func TestStreamingRendererFill(t *testing.T) {
	var buf bytes.Buffer
	sr := NewStreamingRenderer(&buf, RendererConfig{})
	page := PageData{Title: "T"}

	sr.Begin(page)
	sr.Write(vdom.Div(vdom.Data("slot", "content"), vdom.Text("loading")))
	sr.Fill("content", vdom.P(vdom.Text("ready")))
	if err := sr.End(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	placeholder := strings.Index(html, `data-slot="content"`)
	fill := strings.Index(html, `<template data-fill="content"><p>ready</p></template>`)
	if placeholder < 0 || fill < 0 || fill < placeholder {
		t.Errorf("expected placeholder before fill, got:\n%s", html)
	}
}
